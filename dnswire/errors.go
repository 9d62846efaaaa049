// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import "errors"

// Sentinel errors raised by the codec. Wrap with fmt.Errorf("...: %w", ErrX)
// for positional context; callers can still errors.Is against the sentinel.
var (
	// ErrTruncated is returned whenever a read would run past the end of
	// the message buffer.
	ErrTruncated = errors.New("dnswire: truncated message")

	// ErrInvalidLabel is returned when a label fails charset or length
	// validation.
	ErrInvalidLabel = errors.New("dnswire: invalid label")

	// ErrUnknownLabelFormat is returned when a name parse encounters the
	// reserved high-bit label patterns 01 or 10.
	ErrUnknownLabelFormat = errors.New("dnswire: unknown label format")

	// ErrNameTooLong is returned when a name exceeds 255 wire octets or
	// the pointer-hop budget is exhausted (a probable compression cycle).
	ErrNameTooLong = errors.New("dnswire: name too long")

	// ErrInvalidOpt is returned when an OPT (type 41) record is found
	// outside the additional section's OPT-aware decode path.
	ErrInvalidOpt = errors.New("dnswire: OPT record outside additional section")

	// ErrMultipleOpt is returned when a message's additional section
	// contains more than one OPT pseudo-record.
	ErrMultipleOpt = errors.New("dnswire: more than one OPT record")

	// ErrParserState is returned by the typed accessors when a tag and
	// the RData variant it is told to project disagree.
	ErrParserState = errors.New("dnswire: tag/rdata mismatch")
)
