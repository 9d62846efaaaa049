// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "fmt"

// Type is a DNS RR/QTYPE code (RFC 1035 §3.2.2, RFC 2782, RFC 6891).
type Type uint16

const (
	TypeA     Type = 1
	TypeNS    Type = 2
	TypeCNAME Type = 5
	TypeSOA   Type = 6
	TypePTR   Type = 12
	TypeMX    Type = 15
	TypeTXT   Type = 16
	TypeAAAA  Type = 28
	TypeSRV   Type = 33
	TypeOPT   Type = 41
)

var typeNames = map[Type]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeCNAME: "CNAME",
	TypeSOA:   "SOA",
	TypePTR:   "PTR",
	TypeMX:    "MX",
	TypeTXT:   "TXT",
	TypeAAAA:  "AAAA",
	TypeSRV:   "SRV",
	TypeOPT:   "OPT",
}

// String renders the symbolic name when known, else "TYPE<code>".
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// Class is a DNS CLASS code (RFC 1035 §3.2.4).
type Class uint16

const (
	ClassIN Class = 1
	ClassCS Class = 2
	ClassCH Class = 3
	ClassHS Class = 4
)

var classNames = map[Class]string{
	ClassIN: "IN",
	ClassCS: "CS",
	ClassCH: "CH",
	ClassHS: "HS",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// classMask strips the high "unicast/multicast-unique preference" bit
// shared by Question.QClass and ResourceRecord.Class on the wire.
const classMask = 0x7fff

// Opcode is the header OPCODE field, 4 bits wide (values 0..=15). Values
// 3..=15 are not individually named: Opcode stores the raw numeric value
// and IsReserved reports whether it falls outside the named range, so
// round-tripping never loses information — unlike an earlier encoder that
// clamped unnamed opcodes to a named value.
type Opcode uint8

const (
	OpcodeQuery  Opcode = 0
	OpcodeIQuery Opcode = 1
	OpcodeStatus Opcode = 2
)

var opcodeNames = map[Opcode]string{
	OpcodeQuery:  "QUERY",
	OpcodeIQuery: "IQUERY",
	OpcodeStatus: "STATUS",
}

// IsReserved reports whether the opcode has no standard name (3..=15).
func (o Opcode) IsReserved() bool {
	_, ok := opcodeNames[o]
	return !ok
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Reserved(%d)", uint8(o))
}

// ResponseCode is the header RCODE field, 4 bits wide in the base header
// (values 0..=15). The type itself is 8 bits wide; the header encoder
// writes only its low 4 bits, and an EDNS extended RCODE is kept
// separately in OptRecord.ExtRCode rather than merged into it.
type ResponseCode uint8

const (
	RCodeNoError  ResponseCode = 0
	RCodeFormErr  ResponseCode = 1
	RCodeServFail ResponseCode = 2
	RCodeNameErr  ResponseCode = 3
	RCodeNotImpl  ResponseCode = 4
	RCodeRefused  ResponseCode = 5
)

var rcodeNames = map[ResponseCode]string{
	RCodeNoError:  "NoError",
	RCodeFormErr:  "FormatError",
	RCodeServFail: "ServerFailure",
	RCodeNameErr:  "NameError",
	RCodeNotImpl:  "NotImplemented",
	RCodeRefused:  "Refused",
}

// IsReserved reports whether the rcode has no standard name (6..=255).
func (r ResponseCode) IsReserved() bool {
	_, ok := rcodeNames[r]
	return !ok
}

func (r ResponseCode) String() string {
	if name, ok := rcodeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reserved(%d)", uint8(r))
}
