// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import (
	"fmt"
	"net"
)

// RRTag is a compile-time tag identifying one concrete RData payload
// type P. It bundles the wire Type code with a projection (RData ->
// payload) and an injection (payload -> RData), so callers can construct
// and inspect records of a specific kind without pattern-matching the
// full RData union. Go has no source-level "tag type" construct the way
// some other languages do; a generic value type parameterizing the
// accessor functions below is the idiomatic rendition of the same
// compile-time guarantee.
type RRTag[P any] struct {
	typ     Type
	project func(RData) (P, bool)
	inject  func(P) RData
}

// Type returns the wire type code this tag identifies.
func (t RRTag[P]) Type() Type { return t.typ }

var (
	ATag = RRTag[net.IP]{
		typ: TypeA,
		project: func(r RData) (net.IP, bool) {
			if r.Kind != TypeA {
				return nil, false
			}
			return r.A, true
		},
		inject: rdataA,
	}
	AAAATag = RRTag[net.IP]{
		typ: TypeAAAA,
		project: func(r RData) (net.IP, bool) {
			if r.Kind != TypeAAAA {
				return nil, false
			}
			return r.AAAA, true
		},
		inject: rdataAAAA,
	}
	NSTag = RRTag[Name]{
		typ: TypeNS,
		project: func(r RData) (Name, bool) {
			if r.Kind != TypeNS {
				return Name{}, false
			}
			return r.NS, true
		},
		inject: rdataNS,
	}
	CNAMETag = RRTag[Name]{
		typ: TypeCNAME,
		project: func(r RData) (Name, bool) {
			if r.Kind != TypeCNAME {
				return Name{}, false
			}
			return r.CNAME, true
		},
		inject: rdataCNAME,
	}
	PTRTag = RRTag[Name]{
		typ: TypePTR,
		project: func(r RData) (Name, bool) {
			if r.Kind != TypePTR {
				return Name{}, false
			}
			return r.PTR, true
		},
		inject: rdataPTR,
	}
	SOATag = RRTag[SOAData]{
		typ: TypeSOA,
		project: func(r RData) (SOAData, bool) {
			if r.Kind != TypeSOA {
				return SOAData{}, false
			}
			return r.SOA, true
		},
		inject: rdataSOA,
	}
	SRVTag = RRTag[SRVData]{
		typ: TypeSRV,
		project: func(r RData) (SRVData, bool) {
			if r.Kind != TypeSRV {
				return SRVData{}, false
			}
			return r.SRV, true
		},
		inject: rdataSRV,
	}
	MXTag = RRTag[MXData]{
		typ: TypeMX,
		project: func(r RData) (MXData, bool) {
			if r.Kind != TypeMX {
				return MXData{}, false
			}
			return r.MX, true
		},
		inject: rdataMX,
	}
	TXTTag = RRTag[[]byte]{
		typ: TypeTXT,
		project: func(r RData) ([]byte, bool) {
			if r.Kind != TypeTXT {
				return nil, false
			}
			return r.TXT, true
		},
		inject: rdataTXT,
	}
)

// NewRR constructs a ResourceRecord of the kind identified by tag, with
// TTL 0. Use NewRRWithTTL to set a non-zero TTL.
func NewRR[P any](tag RRTag[P], name Name, class Class, payload P) ResourceRecord {
	return NewRRWithTTL(tag, name, class, 0, payload)
}

// NewRRWithTTL constructs a ResourceRecord of the kind identified by tag.
func NewRRWithTTL[P any](tag RRTag[P], name Name, class Class, ttl uint32, payload P) ResourceRecord {
	return ResourceRecord{
		Name:  name,
		Class: class,
		TTL:   ttl,
		Data:  tag.inject(payload),
	}
}

// NewUnknownRR constructs a ResourceRecord holding an opaque payload for
// a type code this codec has no dedicated tag for. TypeCode is always
// populated on the resulting RData.Raw.
func NewUnknownRR(name Name, class Class, ttl uint32, typeCode uint16, data []byte) ResourceRecord {
	return ResourceRecord{
		Name:  name,
		Class: class,
		TTL:   ttl,
		Data:  rdataUnknown(typeCode, data),
	}
}

// GetRData projects rr's RData onto the payload type tag identifies. ok
// is false if rr does not hold that kind of record.
func GetRData[P any](rr ResourceRecord, tag RRTag[P]) (payload P, ok bool) {
	return tag.project(rr.Data)
}

// MustGetRData is GetRData but returns ErrParserState instead of ok=false
// when the tag and the record's kind disagree — useful when the caller
// has already branched on rr.Data.Kind and a mismatch would indicate an
// internal inconsistency rather than an expected miss.
func MustGetRData[P any](rr ResourceRecord, tag RRTag[P]) (P, error) {
	payload, ok := tag.project(rr.Data)
	if !ok {
		var zero P
		return zero, fmt.Errorf("record kind %s does not match tag %s: %w", rr.Data.Kind, tag.typ, ErrParserState)
	}
	return payload, nil
}

// IsRData reports whether rr holds the kind of record tag identifies.
func IsRData[P any](rr ResourceRecord, tag RRTag[P]) bool {
	_, ok := tag.project(rr.Data)
	return ok
}

// NewQuestion constructs a Question for tag's type code.
func NewQuestion[P any](tag RRTag[P], name Name, class Class) Question {
	return Question{Name: name, QType: tag.typ, QClass: class}
}
