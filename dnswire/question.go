// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "fmt"

// Question is one entry of a message's question section (RFC 1035
// §4.1.2). PreferUnicast is the high bit of the on-wire QCLASS field,
// reserved by mDNS (RFC 6762 §5.4) to ask for a unicast rather than
// multicast reply.
type Question struct {
	Name          Name
	QType         Type
	QClass        Class
	PreferUnicast bool
}

func parseQuestion(c *cursor, limits Limits) (Question, error) {
	name, err := parseName(c, limits)
	if err != nil {
		return Question{}, fmt.Errorf("parse question: %w", err)
	}
	qtype, err := c.readUint16()
	if err != nil {
		return Question{}, fmt.Errorf("parse question: %w", err)
	}
	rawClass, err := c.readUint16()
	if err != nil {
		return Question{}, fmt.Errorf("parse question: %w", err)
	}
	return Question{
		Name:          name,
		QType:         Type(qtype),
		QClass:        Class(rawClass & classMask),
		PreferUnicast: rawClass&^classMask != 0,
	}, nil
}

func (q Question) writeTo(w *writer) {
	q.Name.writeTo(w)
	w.writeUint16(uint16(q.QType))
	rawClass := uint16(q.QClass) & classMask
	if q.PreferUnicast {
		rawClass |= 0x8000
	}
	w.writeUint16(rawClass)
}
