// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

// Package dnswire encodes and decodes DNS wire-format messages (RFC 1035,
// RFC 2782 for SRV, RFC 6891 for EDNS0 OPT). It is a pure protocol codec:
// it transforms between a byte buffer and a typed in-memory Message and
// back, performing no network I/O, name resolution, or zone management —
// those are left to whatever consumes this package (see cmd/dnscapdump
// and the telemetry package for thin, optional wrappers around it).
package dnswire

import "fmt"

// Message is a complete DNS message: a header plus four sections. At
// most one OPT pseudo-record may appear anywhere in the message; it is
// never stored in Additional, only in Opt.
type Message struct {
	Header     Header
	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
	Opt        *OptRecord
}

// Decoder parses messages under a fixed set of limits (name-length and
// pointer-hop bounds, label charset). The zero value is not valid for
// direct use: construct one with NewDecoder, typically from limits
// loaded via config.LoadLimits. A Decoder is immutable and safe for
// concurrent use.
type Decoder struct {
	limits Limits
}

// NewDecoder returns a Decoder enforcing limits.
func NewDecoder(limits Limits) *Decoder {
	return &Decoder{limits: limits}
}

// ParseMessage decodes data under DefaultLimits. It is equivalent to
// NewDecoder(DefaultLimits()).Parse(data).
func ParseMessage(data []byte) (*Message, error) {
	return NewDecoder(DefaultLimits()).Parse(data)
}

// Parse decodes a complete DNS message from data. A failed parse returns
// (nil, error) and leaves no partially-built Message observable.
func (d *Decoder) Parse(data []byte) (*Message, error) {
	c := newCursor(data)

	header, err := parseHeader(c)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0, header.qdcount)
	for i := 0; i < int(header.qdcount); i++ {
		q, err := parseQuestion(c, d.limits)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
	}

	answers := make([]ResourceRecord, 0, header.ancount)
	for i := 0; i < int(header.ancount); i++ {
		rr, err := parseRR(c, d.limits)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i, err)
		}
		answers = append(answers, rr)
	}

	authority := make([]ResourceRecord, 0, header.nscount)
	for i := 0; i < int(header.nscount); i++ {
		rr, err := parseRR(c, d.limits)
		if err != nil {
			return nil, fmt.Errorf("authority %d: %w", i, err)
		}
		authority = append(authority, rr)
	}

	additional := make([]ResourceRecord, 0, header.arcount)
	var opt *OptRecord
	for i := 0; i < int(header.arcount); i++ {
		entry, err := parseAdditionalEntry(c, d.limits)
		if err != nil {
			return nil, fmt.Errorf("additional %d: %w", i, err)
		}
		if entry.opt != nil {
			if opt != nil {
				return nil, fmt.Errorf("additional %d: %w", i, ErrMultipleOpt)
			}
			opt = entry.opt
			continue
		}
		additional = append(additional, entry.rr)
	}

	return &Message{
		Header:     header,
		Questions:  questions,
		Answers:    answers,
		Authority:  authority,
		Additional: additional,
		Opt:        opt,
	}, nil
}

// Serialize encodes m to wire format. No name compression is performed:
// the encoder always emits uncompressed names, which RFC 1035 permits
// since compression is an optimization, not a requirement. Callers that
// must fit a 512-byte UDP datagram are responsible for checking
// len(result) and setting Truncated themselves.
func (m *Message) Serialize() ([]byte, error) {
	w := &writer{}

	arcount := len(m.Additional)
	if m.Opt != nil {
		arcount++
	}
	m.Header.writeTo(w,
		uint16(len(m.Questions)),
		uint16(len(m.Answers)),
		uint16(len(m.Authority)),
		uint16(arcount),
	)

	for _, q := range m.Questions {
		q.writeTo(w)
	}
	for i, rr := range m.Answers {
		if err := rr.writeTo(w); err != nil {
			return nil, fmt.Errorf("serialize answer %d: %w", i, err)
		}
	}
	for i, rr := range m.Authority {
		if err := rr.writeTo(w); err != nil {
			return nil, fmt.Errorf("serialize authority %d: %w", i, err)
		}
	}
	for i, rr := range m.Additional {
		if err := rr.writeTo(w); err != nil {
			return nil, fmt.Errorf("serialize additional %d: %w", i, err)
		}
	}
	if m.Opt != nil {
		m.Opt.writeTo(w)
	}

	return w.buf, nil
}

// NewQuery builds an empty standard query (QR=0, RD=1, Opcode=Query)
// with the given transaction ID.
func NewQuery(id uint16) *Message {
	return &Message{
		Header: Header{
			ID:               id,
			IsQuery:          true,
			Opcode:           OpcodeQuery,
			RecursionDesired: true,
		},
	}
}

// NewResponse builds an empty response (QR=1) echoing id, with RCode
// NoError.
func NewResponse(id uint16) *Message {
	return &Message{
		Header: Header{
			ID:           id,
			IsQuery:      false,
			Opcode:       OpcodeQuery,
			ResponseCode: RCodeNoError,
		},
	}
}

// NewError builds an empty response (QR=1) echoing id with the given
// response code.
func NewError(id uint16, rcode ResponseCode) *Message {
	m := NewResponse(id)
	m.Header.ResponseCode = rcode
	return m
}
