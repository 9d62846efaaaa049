// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "fmt"

// Limits configures the tolerances a Decoder enforces — the things the
// wire format leaves as implementation choices rather than fixing them
// itself. The config package loads these from YAML; dnswire itself only
// knows how to validate and apply them, keeping the codec free of any
// config-file or logging dependency.
type Limits struct {
	// MaxNameOctets bounds the total on-wire length of a decoded name.
	// RFC 1035 fixes this at 255.
	MaxNameOctets int
	// MaxPointerHops bounds the number of label-reads a single name
	// parse may perform before failing with ErrNameTooLong.
	MaxPointerHops int
	// Charset selects which bytes a label's content may use.
	Charset LabelCharset
}

// DefaultLimits returns the codec's out-of-the-box tolerances: the RFC
// 1035 255-octet name bound, a 127-hop pointer budget, and the relaxed
// LDH+underscore charset — SRV-style owner names like
// _xmpp-server._tcp.example.com are accepted without extra configuration.
func DefaultLimits() Limits {
	return Limits{
		MaxNameOctets:  maxNameOctets,
		MaxPointerHops: maxPointerHops,
		Charset:        CharsetLDHUnderscore,
	}
}

// Validate rejects limits that would violate RFC 1035/6891 bounds.
func (l Limits) Validate() error {
	if l.MaxNameOctets <= 0 || l.MaxNameOctets > maxNameOctets {
		return fmt.Errorf("max name octets must be in (0,%d], got %d", maxNameOctets, l.MaxNameOctets)
	}
	if l.MaxPointerHops <= 0 {
		return fmt.Errorf("max pointer hops must be positive, got %d", l.MaxPointerHops)
	}
	switch l.Charset {
	case CharsetLDH, CharsetLDHUnderscore:
	default:
		return fmt.Errorf("unknown label charset %v", l.Charset)
	}
	return nil
}
