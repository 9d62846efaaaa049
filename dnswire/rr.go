// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "fmt"

// ResourceRecord is one entry of a message's answer, authority, or
// (non-OPT) additional section. MulticastUnique is the high bit of the
// on-wire class field, reserved by mDNS (RFC 6762 §10.2) to mark a
// "cache-flush" record.
type ResourceRecord struct {
	Name            Name
	Class           Class
	TTL             uint32
	MulticastUnique bool
	Data            RData
}

// parseRR decodes the standard RR wire format: name, type, class, ttl,
// rdlen, rdata. OPT (type 41) is rejected here — it is only valid
// through parseAdditionalEntry's OPT-aware path.
func parseRR(c *cursor, limits Limits) (ResourceRecord, error) {
	name, err := parseName(c, limits)
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("parse RR: %w", err)
	}
	rawType, err := c.readUint16()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("parse RR: %w", err)
	}
	if Type(rawType) == TypeOPT {
		return ResourceRecord{}, fmt.Errorf("parse RR: %w", ErrInvalidOpt)
	}
	rawClass, err := c.readUint16()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("parse RR: %w", err)
	}
	ttl, err := c.readUint32()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("parse RR: %w", err)
	}
	rdlen, err := c.readUint16()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("parse RR: %w", err)
	}
	data, err := parseRData(c, Type(rawType), int(rdlen), limits)
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("parse RR: %w", err)
	}
	// parseRData's default branch already stamps RawData.TypeCode from
	// the type it was called with, so Unknown records never lose their
	// code on this path either.

	return ResourceRecord{
		Name:            name,
		Class:           Class(rawClass & classMask),
		TTL:             ttl,
		MulticastUnique: rawClass&^classMask != 0,
		Data:            data,
	}, nil
}

func (rr ResourceRecord) writeTo(w *writer) error {
	rr.Name.writeTo(w)
	w.writeUint16(uint16(rr.Data.Kind))
	rawClass := uint16(rr.Class) & classMask
	if rr.MulticastUnique {
		rawClass |= 0x8000
	}
	w.writeUint16(rawClass)
	w.writeUint32(rr.TTL)

	rdlenOff := w.reserveUint16()
	bodyStart := len(w.buf)
	if err := serializeRData(w, rr.Data); err != nil {
		return fmt.Errorf("serialize RR: %w", err)
	}
	w.patchUint16(rdlenOff, uint16(len(w.buf)-bodyStart))
	return nil
}

// additionalEntry is either a plain ResourceRecord or the single OPT
// pseudo-record, as decoded by parseAdditionalEntry.
type additionalEntry struct {
	opt *OptRecord
	rr  ResourceRecord
}

// parseAdditionalEntry implements the additional-section OPT sniff:
// peek at the next 4 bytes; if they spell "root name + type 41",
// decode as OPT, else rewind and parse normally.
func parseAdditionalEntry(c *cursor, limits Limits) (additionalEntry, error) {
	if looksLikeOPT(c) {
		opt, err := parseOpt(c)
		if err != nil {
			return additionalEntry{}, err
		}
		return additionalEntry{opt: &opt}, nil
	}
	rr, err := parseRR(c, limits)
	if err != nil {
		return additionalEntry{}, err
	}
	return additionalEntry{rr: rr}, nil
}
