// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import (
	"fmt"
	"net"
)

// RData is a closed tagged union of the record-data payloads this codec
// understands. Exactly one of the typed fields is meaningful, selected by
// Kind. Unrecognized type codes decode into Raw — every construction
// path populates RawData.TypeCode, so the original numeric type is never
// lost even when the record isn't one this codec parses structurally.
type RData struct {
	Kind Type

	A     net.IP // 4-byte form
	AAAA  net.IP // 16-byte form
	NS    Name
	CNAME Name
	PTR   Name
	SOA   SOAData
	SRV   SRVData
	MX    MXData
	TXT   []byte
	Raw   RawData // used when Kind has no dedicated field above
}

// SOAData is the RDATA body of an SOA record (RFC 1035 §3.3.13).
type SOAData struct {
	PrimaryNS Name
	Mailbox   Name
	Serial    uint32
	Refresh   uint32
	Retry     uint32
	Expire    uint32
	MinTTL    uint32
}

// SRVData is the RDATA body of an SRV record (RFC 2782).
type SRVData struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   Name
}

// MXData is the RDATA body of an MX record (RFC 1035 §3.3.9).
type MXData struct {
	Preference uint16
	Exchange   Name
}

// RawData is the RDATA body of a record type this codec does not parse
// structurally — its bytes are kept opaque.
type RawData struct {
	TypeCode uint16
	Bytes    []byte
}

func rdataA(ip net.IP) RData     { return RData{Kind: TypeA, A: ip} }
func rdataAAAA(ip net.IP) RData  { return RData{Kind: TypeAAAA, AAAA: ip} }
func rdataNS(n Name) RData       { return RData{Kind: TypeNS, NS: n} }
func rdataCNAME(n Name) RData    { return RData{Kind: TypeCNAME, CNAME: n} }
func rdataPTR(n Name) RData      { return RData{Kind: TypePTR, PTR: n} }
func rdataSOA(d SOAData) RData   { return RData{Kind: TypeSOA, SOA: d} }
func rdataSRV(d SRVData) RData   { return RData{Kind: TypeSRV, SRV: d} }
func rdataMX(d MXData) RData     { return RData{Kind: TypeMX, MX: d} }
func rdataTXT(b []byte) RData    { return RData{Kind: TypeTXT, TXT: b} }
func rdataUnknown(t uint16, b []byte) RData {
	return RData{Kind: Type(t), Raw: RawData{TypeCode: t, Bytes: b}}
}

// parseRData dispatches on typ to decode the next rdlen bytes of c into
// an RData. Names inside RDATA may use compression pointers and so are
// parsed through the shared cursor, not sliced out of rdlen in isolation.
func parseRData(c *cursor, typ Type, rdlen int, limits Limits) (RData, error) {
	start := c.pos
	end := start + rdlen
	if rdlen < 0 || end > len(c.buf) {
		return RData{}, fmt.Errorf("parse rdata: %w", ErrTruncated)
	}

	switch typ {
	case TypeA:
		if rdlen != 4 {
			return RData{}, fmt.Errorf("parse A rdata: want 4 bytes, got %d", rdlen)
		}
		b, err := c.readBytes(4)
		if err != nil {
			return RData{}, err
		}
		return rdataA(net.IP(b)), nil

	case TypeAAAA:
		if rdlen != 16 {
			return RData{}, fmt.Errorf("parse AAAA rdata: want 16 bytes, got %d", rdlen)
		}
		b, err := c.readBytes(16)
		if err != nil {
			return RData{}, err
		}
		return rdataAAAA(net.IP(b)), nil

	case TypeNS:
		n, err := parseName(c, limits)
		if err != nil {
			return RData{}, fmt.Errorf("parse NS rdata: %w", err)
		}
		return rdataNS(n), nil

	case TypeCNAME:
		n, err := parseName(c, limits)
		if err != nil {
			return RData{}, fmt.Errorf("parse CNAME rdata: %w", err)
		}
		return rdataCNAME(n), nil

	case TypePTR:
		n, err := parseName(c, limits)
		if err != nil {
			return RData{}, fmt.Errorf("parse PTR rdata: %w", err)
		}
		return rdataPTR(n), nil

	case TypeSOA:
		mname, err := parseName(c, limits)
		if err != nil {
			return RData{}, fmt.Errorf("parse SOA rdata: %w", err)
		}
		rname, err := parseName(c, limits)
		if err != nil {
			return RData{}, fmt.Errorf("parse SOA rdata: %w", err)
		}
		serial, err := c.readUint32()
		if err != nil {
			return RData{}, fmt.Errorf("parse SOA rdata: %w", err)
		}
		refresh, err := c.readUint32()
		if err != nil {
			return RData{}, fmt.Errorf("parse SOA rdata: %w", err)
		}
		retry, err := c.readUint32()
		if err != nil {
			return RData{}, fmt.Errorf("parse SOA rdata: %w", err)
		}
		expire, err := c.readUint32()
		if err != nil {
			return RData{}, fmt.Errorf("parse SOA rdata: %w", err)
		}
		minTTL, err := c.readUint32()
		if err != nil {
			return RData{}, fmt.Errorf("parse SOA rdata: %w", err)
		}
		return rdataSOA(SOAData{
			PrimaryNS: mname,
			Mailbox:   rname,
			Serial:    serial,
			Refresh:   refresh,
			Retry:     retry,
			Expire:    expire,
			MinTTL:    minTTL,
		}), nil

	case TypeMX:
		pref, err := c.readUint16()
		if err != nil {
			return RData{}, fmt.Errorf("parse MX rdata: %w", err)
		}
		exchange, err := parseName(c, limits)
		if err != nil {
			return RData{}, fmt.Errorf("parse MX rdata: %w", err)
		}
		return rdataMX(MXData{Preference: pref, Exchange: exchange}), nil

	case TypeSRV:
		priority, err := c.readUint16()
		if err != nil {
			return RData{}, fmt.Errorf("parse SRV rdata: %w", err)
		}
		weight, err := c.readUint16()
		if err != nil {
			return RData{}, fmt.Errorf("parse SRV rdata: %w", err)
		}
		port, err := c.readUint16()
		if err != nil {
			return RData{}, fmt.Errorf("parse SRV rdata: %w", err)
		}
		target, err := parseName(c, limits)
		if err != nil {
			return RData{}, fmt.Errorf("parse SRV rdata: %w", err)
		}
		return rdataSRV(SRVData{Priority: priority, Weight: weight, Port: port, Target: target}), nil

	case TypeTXT:
		b, err := c.readBytes(rdlen)
		if err != nil {
			return RData{}, fmt.Errorf("parse TXT rdata: %w", err)
		}
		return rdataTXT(b), nil

	default:
		b, err := c.readBytes(rdlen)
		if err != nil {
			return RData{}, fmt.Errorf("parse rdata type %d: %w", uint16(typ), err)
		}
		return rdataUnknown(uint16(typ), b), nil
	}
}

// serializeRData appends the RDATA body (without the length prefix,
// which the caller patches in separately — see rr.go) for r.
func serializeRData(w *writer, r RData) error {
	switch r.Kind {
	case TypeA:
		ip4 := r.A.To4()
		if ip4 == nil {
			return fmt.Errorf("serialize A rdata: not an IPv4 address: %v", r.A)
		}
		w.writeBytes(ip4)

	case TypeAAAA:
		ip16 := r.AAAA.To16()
		if ip16 == nil || r.AAAA.To4() != nil {
			return fmt.Errorf("serialize AAAA rdata: not an IPv6 address: %v", r.AAAA)
		}
		w.writeBytes(ip16)

	case TypeNS:
		r.NS.writeTo(w)

	case TypeCNAME:
		r.CNAME.writeTo(w)

	case TypePTR:
		r.PTR.writeTo(w)

	case TypeSOA:
		r.SOA.PrimaryNS.writeTo(w)
		r.SOA.Mailbox.writeTo(w)
		w.writeUint32(r.SOA.Serial)
		w.writeUint32(r.SOA.Refresh)
		w.writeUint32(r.SOA.Retry)
		w.writeUint32(r.SOA.Expire)
		w.writeUint32(r.SOA.MinTTL)

	case TypeMX:
		w.writeUint16(r.MX.Preference)
		r.MX.Exchange.writeTo(w)

	case TypeSRV:
		w.writeUint16(r.SRV.Priority)
		w.writeUint16(r.SRV.Weight)
		w.writeUint16(r.SRV.Port)
		r.SRV.Target.writeTo(w)

	case TypeTXT:
		w.writeBytes(r.TXT)

	default:
		w.writeBytes(r.Raw.Bytes)
	}
	return nil
}
