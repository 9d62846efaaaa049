// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import (
	"errors"
	"net"
	"testing"
)

func TestNewRRAndGetRData(t *testing.T) {
	name := MustParseName("www.example.com", CharsetLDH)
	ip := net.ParseIP("192.0.2.1").To4()

	rr := NewRRWithTTL(ATag, name, ClassIN, 300, ip)
	if rr.Data.Kind != TypeA {
		t.Fatalf("Kind = %v, want TypeA", rr.Data.Kind)
	}

	got, ok := GetRData(rr, ATag)
	if !ok {
		t.Fatal("GetRData ok = false")
	}
	if !got.Equal(ip) {
		t.Fatalf("GetRData = %v, want %v", got, ip)
	}

	if _, ok := GetRData(rr, AAAATag); ok {
		t.Fatal("GetRData(AAAATag) on an A record should fail")
	}
	if !IsRData(rr, ATag) {
		t.Fatal("IsRData(ATag) = false")
	}
	if IsRData(rr, AAAATag) {
		t.Fatal("IsRData(AAAATag) = true on an A record")
	}
	t.Log("NewRR/GetRData/IsRData tag accessors agree")
}

func TestMustGetRDataMismatch(t *testing.T) {
	name := MustParseName("example.com", CharsetLDH)
	rr := NewRR(NSTag, name, ClassIN, MustParseName("ns1.example.com", CharsetLDH))

	if _, err := MustGetRData(rr, NSTag); err != nil {
		t.Fatalf("MustGetRData(NSTag): %v", err)
	}
	if _, err := MustGetRData(rr, CNAMETag); !errors.Is(err, ErrParserState) {
		t.Fatalf("err = %v, want ErrParserState", err)
	}
	t.Log("MustGetRData reports a tag/kind mismatch as ErrParserState")
}

func TestNewQuestionUsesTagType(t *testing.T) {
	q := NewQuestion(SRVTag, MustParseName("_xmpp-server._tcp.example.com", CharsetLDHUnderscore), ClassIN)
	if q.QType != TypeSRV {
		t.Fatalf("QType = %v, want TypeSRV", q.QType)
	}
	t.Log("NewQuestion uses the tag's wire type")
}

func TestNewUnknownRRPreservesTypeCode(t *testing.T) {
	name := MustParseName("example.com", CharsetLDH)
	rr := NewUnknownRR(name, ClassIN, 60, 999, []byte{1, 2, 3})
	if rr.Data.Kind != Type(999) {
		t.Fatalf("Kind = %v, want TYPE999", rr.Data.Kind)
	}
	if rr.Data.Raw.TypeCode != 999 {
		t.Fatalf("Raw.TypeCode = %d, want 999", rr.Data.Raw.TypeCode)
	}
	t.Log("unknown type code preserved on RawData")
}
