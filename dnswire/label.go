// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "fmt"

const (
	minLabelLen = 1
	maxLabelLen = 63
)

// LabelCharset selects which bytes ParseLabel accepts. The default
// codec-wide behavior is CharsetLDHUnderscore: a strict RFC-1035-only
// decoder should build a Decoder with CharsetLDH.
type LabelCharset int

const (
	// CharsetLDH accepts only letters, digits, and hyphen — RFC 1035
	// §2.3.1's "preferred name syntax".
	CharsetLDH LabelCharset = iota
	// CharsetLDHUnderscore additionally accepts '_', required for
	// SRV-style owner names such as _xmpp-server._tcp.example.com.
	CharsetLDHUnderscore
)

// Label is a single validated DNS label, 1-63 bytes. It is immutable
// after construction.
type Label struct {
	bytes []byte
}

// ParseLabel validates s against the given charset and wraps it as a
// Label. An empty string is rejected: use Name{} (no labels) for root.
func ParseLabel(s string, charset LabelCharset) (Label, error) {
	if len(s) < minLabelLen || len(s) > maxLabelLen {
		return Label{}, fmt.Errorf("label %q: length %d out of [%d,%d]: %w",
			s, len(s), minLabelLen, maxLabelLen, ErrInvalidLabel)
	}
	for i := 0; i < len(s); i++ {
		if !labelByteAllowed(s[i], charset) {
			return Label{}, fmt.Errorf("label %q: byte %q not in allowed charset: %w",
				s, s[i], ErrInvalidLabel)
		}
	}
	b := make([]byte, len(s))
	copy(b, s)
	return Label{bytes: b}, nil
}

// newLabelFromWire validates label bytes read off the wire (no charset
// choice is offered there beyond what the decoder was configured with).
func newLabelFromWire(b []byte, charset LabelCharset) (Label, error) {
	if len(b) < minLabelLen || len(b) > maxLabelLen {
		return Label{}, fmt.Errorf("wire label: length %d out of [%d,%d]: %w",
			len(b), minLabelLen, maxLabelLen, ErrInvalidLabel)
	}
	for _, c := range b {
		if !labelByteAllowed(c, charset) {
			return Label{}, fmt.Errorf("wire label %q: byte %q not in allowed charset: %w",
				b, c, ErrInvalidLabel)
		}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Label{bytes: cp}, nil
}

func labelByteAllowed(c byte, charset LabelCharset) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		return true
	case c == '_' && charset == CharsetLDHUnderscore:
		return true
	default:
		return false
	}
}

// String returns the label's text content.
func (l Label) String() string {
	return string(l.bytes)
}

// Len returns the number of content bytes (not counting the wire length
// byte).
func (l Label) Len() int {
	return len(l.bytes)
}

func (l Label) equal(o Label) bool {
	if len(l.bytes) != len(o.bytes) {
		return false
	}
	for i := range l.bytes {
		if l.bytes[i] != o.bytes[i] {
			return false
		}
	}
	return true
}

// writeTo appends the wire form (length byte + raw bytes) of the label.
func (l Label) writeTo(w *writer) {
	w.writeByte(byte(len(l.bytes)))
	w.writeBytes(l.bytes)
}
