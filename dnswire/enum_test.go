// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "testing"

func TestTypeRoundTrip(t *testing.T) {
	for v := 0; v < 65536; v += 4091 { // sparse sweep across the u16 domain
		if got := uint16(Type(v)); got != uint16(v) {
			t.Fatalf("Type round-trip: got %d, want %d", got, v)
		}
	}
	t.Log("Type round-trips across the uint16 domain")
}

func TestClassRoundTrip(t *testing.T) {
	for v := 0; v < 65536; v += 4091 {
		if got := uint16(Class(v)); got != uint16(v) {
			t.Fatalf("Class round-trip: got %d, want %d", got, v)
		}
	}
	t.Log("Class round-trips across the uint16 domain")
}

func TestOpcodeRoundTripIncludingReserved(t *testing.T) {
	for v := 0; v <= 15; v++ {
		o := Opcode(v)
		if got := uint8(o); got != uint8(v) {
			t.Fatalf("Opcode(%d) round-trip: got %d", v, got)
		}
	}
	if !Opcode(9).IsReserved() {
		t.Fatal("Opcode(9) should be reserved")
	}
	if Opcode(OpcodeQuery).IsReserved() {
		t.Fatal("OpcodeQuery should not be reserved")
	}
	t.Log("Opcode round-trips and flags reserved values")
}

func TestResponseCodeRoundTripIncludingReserved(t *testing.T) {
	for v := 0; v <= 15; v++ {
		r := ResponseCode(v)
		if got := uint8(r); got != uint8(v) {
			t.Fatalf("ResponseCode(%d) round-trip: got %d", v, got)
		}
	}
	if !ResponseCode(11).IsReserved() {
		t.Fatal("ResponseCode(11) should be reserved")
	}
	t.Log("ResponseCode round-trips and flags reserved values")
}

func TestKnownEnumStrings(t *testing.T) {
	if TypeA.String() != "A" {
		t.Fatalf("TypeA.String() = %q", TypeA.String())
	}
	if Type(9999).String() != "TYPE9999" {
		t.Fatalf("Type(9999).String() = %q", Type(9999).String())
	}
	if ClassIN.String() != "IN" {
		t.Fatalf("ClassIN.String() = %q", ClassIN.String())
	}
	if OpcodeStatus.String() != "STATUS" {
		t.Fatalf("OpcodeStatus.String() = %q", OpcodeStatus.String())
	}
	if RCodeRefused.String() != "Refused" {
		t.Fatalf("RCodeRefused.String() = %q", RCodeRefused.String())
	}
	t.Log("known and unknown enum symbols stringify correctly")
}
