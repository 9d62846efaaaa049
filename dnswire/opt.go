// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "fmt"

// OptRecord is the EDNS0 pseudo-RR (RFC 6891) carried at most once in a
// message's additional section, surfaced separately from the ordinary
// ResourceRecord slices.
type OptRecord struct {
	UDPPayloadSize uint16
	ExtRCode       uint8
	EDNSVersion    uint8
	Flags          uint16
	Data           []byte
}

// EDNSOption is one TLV entry of an OPT record's RDATA once split.
type EDNSOption struct {
	Code uint16
	Data []byte
}

// Options lazily splits Data into its constituent EDNS option TLVs,
// following the {code uint16, length uint16, value} layout of RFC 6891
// §6.1.2. A truncated trailing TLV is dropped rather than causing an
// error, since Data itself was already validated by length during
// decode — this mirrors how other retrieved DNS codebases treat EDNS
// option splitting as a best-effort convenience view over the raw bytes.
func (o OptRecord) Options() []EDNSOption {
	var opts []EDNSOption
	data := o.Data
	for len(data) >= 4 {
		code := uint16(data[0])<<8 | uint16(data[1])
		length := int(uint16(data[2])<<8 | uint16(data[3]))
		data = data[4:]
		if length > len(data) {
			break
		}
		val := make([]byte, length)
		copy(val, data[:length])
		opts = append(opts, EDNSOption{Code: code, Data: val})
		data = data[length:]
	}
	return opts
}

// MarshalOptions serializes opts into Data's TLV form.
func MarshalOptions(opts []EDNSOption) []byte {
	var out []byte
	for _, o := range opts {
		out = append(out, byte(o.Code>>8), byte(o.Code))
		out = append(out, byte(len(o.Data)>>8), byte(len(o.Data)))
		out = append(out, o.Data...)
	}
	return out
}

// looksLikeOPT peeks at the next 4 bytes of c: an OPT pseudo-RR's owner
// name is always the single root label (0x00) immediately followed by
// the type code 0x002A (41), per RFC 6891 §6.1.2. A real compression
// pointer can never occupy that first byte as 0x00 (pointers have their
// high two bits set), so this shortcut is equivalent to separately
// decoding name+type and checking the type.
func looksLikeOPT(c *cursor) bool {
	word, ok := c.peekUint32()
	if !ok {
		return false
	}
	return word>>8 == uint32(TypeOPT)
}

func parseOpt(c *cursor) (OptRecord, error) {
	// Root name (0x00) + type (already confirmed == 41 by the caller).
	if _, err := c.readByte(); err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}
	if _, err := c.readUint16(); err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}

	udpSize, err := c.readUint16()
	if err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}
	extRCode, err := c.readByte()
	if err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}
	version, err := c.readByte()
	if err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}
	flags, err := c.readUint16()
	if err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}
	rdlen, err := c.readUint16()
	if err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}
	data, err := c.readBytes(int(rdlen))
	if err != nil {
		return OptRecord{}, fmt.Errorf("parse OPT: %w", err)
	}

	return OptRecord{
		UDPPayloadSize: udpSize,
		ExtRCode:       extRCode,
		EDNSVersion:    version,
		Flags:          flags,
		Data:           data,
	}, nil
}

func (o OptRecord) writeTo(w *writer) {
	w.writeByte(0) // root owner name
	w.writeUint16(uint16(TypeOPT))
	w.writeUint16(o.UDPPayloadSize)
	w.writeByte(o.ExtRCode)
	w.writeByte(o.EDNSVersion)
	w.writeUint16(o.Flags)
	w.writeUint16(uint16(len(o.Data)))
	w.writeBytes(o.Data)
}
