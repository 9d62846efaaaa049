// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import (
	"errors"
	"net"
	"testing"
)

func TestRRRoundTripA(t *testing.T) {
	name := MustParseName("host.example.com", CharsetLDH)
	rr := NewRRWithTTL(ATag, name, ClassIN, 3600, net.ParseIP("198.51.100.7").To4())

	w := &writer{}
	if err := rr.writeTo(w); err != nil {
		t.Fatalf("writeTo: %v", err)
	}

	c := newCursor(w.buf)
	got, err := parseRR(c, DefaultLimits())
	if err != nil {
		t.Fatalf("parseRR: %v", err)
	}
	if !got.Name.Equal(rr.Name) || got.Class != rr.Class || got.TTL != rr.TTL {
		t.Fatalf("got %+v, want %+v", got, rr)
	}
	ip, ok := GetRData(got, ATag)
	if !ok || !ip.Equal(net.ParseIP("198.51.100.7")) {
		t.Fatalf("A payload = %v, ok=%v", ip, ok)
	}
	t.Log("A record round-tripped")
}

func TestRRRoundTripSRV(t *testing.T) {
	owner := MustParseName("_xmpp-server._tcp.example.com", CharsetLDHUnderscore)
	target := MustParseName("xmpp1.example.com", CharsetLDHUnderscore)
	rr := NewRRWithTTL(SRVTag, owner, ClassIN, 300, SRVData{Priority: 10, Weight: 20, Port: 5269, Target: target})

	w := &writer{}
	if err := rr.writeTo(w); err != nil {
		t.Fatalf("writeTo: %v", err)
	}

	c := newCursor(w.buf)
	limits := DefaultLimits()
	limits.Charset = CharsetLDHUnderscore
	got, err := parseRR(c, limits)
	if err != nil {
		t.Fatalf("parseRR: %v", err)
	}
	srv, ok := GetRData(got, SRVTag)
	if !ok {
		t.Fatal("not an SRV record")
	}
	if srv.Priority != 10 || srv.Weight != 20 || srv.Port != 5269 || !srv.Target.Equal(target) {
		t.Fatalf("SRVData = %+v", srv)
	}
	t.Log("SRV record round-tripped")
}

func TestParseRRRejectsOPTType(t *testing.T) {
	name := MustParseName("example.com", CharsetLDH)

	w := &writer{}
	name.writeTo(w)
	w.writeUint16(uint16(TypeOPT))
	w.writeUint16(uint16(ClassIN))
	w.writeUint32(0)
	w.writeUint16(0)

	c := newCursor(w.buf)
	if _, err := parseRR(c, DefaultLimits()); !errors.Is(err, ErrInvalidOpt) {
		t.Fatalf("err = %v, want ErrInvalidOpt", err)
	}
	t.Log("OPT type code rejected by the plain RR parser")
}

func TestParseAdditionalEntryDispatchesOPT(t *testing.T) {
	opt := OptRecord{UDPPayloadSize: 1232, EDNSVersion: 0}
	w := &writer{}
	opt.writeTo(w)

	c := newCursor(w.buf)
	entry, err := parseAdditionalEntry(c, DefaultLimits())
	if err != nil {
		t.Fatalf("parseAdditionalEntry: %v", err)
	}
	if entry.opt == nil {
		t.Fatal("expected an OPT entry")
	}
	if entry.opt.UDPPayloadSize != 1232 {
		t.Fatalf("UDPPayloadSize = %d, want 1232", entry.opt.UDPPayloadSize)
	}
	t.Log("additional-section OPT record dispatched correctly")
}

func TestParseAdditionalEntryDispatchesOrdinaryRR(t *testing.T) {
	name := MustParseName("example.com", CharsetLDH)
	rr := NewRRWithTTL(ATag, name, ClassIN, 0, net.ParseIP("127.0.0.1").To4())
	w := &writer{}
	if err := rr.writeTo(w); err != nil {
		t.Fatalf("writeTo: %v", err)
	}

	c := newCursor(w.buf)
	entry, err := parseAdditionalEntry(c, DefaultLimits())
	if err != nil {
		t.Fatalf("parseAdditionalEntry: %v", err)
	}
	if entry.opt != nil {
		t.Fatal("expected a plain RR, got an OPT entry")
	}
	if entry.rr.Data.Kind != TypeA {
		t.Fatalf("Kind = %v, want TypeA", entry.rr.Data.Kind)
	}
	t.Log("ordinary additional-section RR dispatched correctly")
}
