// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package dnswire

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLabelAcceptsLDH(t *testing.T) {
	lbl, err := ParseLabel("example-1", CharsetLDH)
	if err != nil {
		t.Fatalf("ParseLabel: %v", err)
	}
	if lbl.String() != "example-1" {
		t.Fatalf("String() = %q, want %q", lbl.String(), "example-1")
	}
	t.Log("LDH label accepted")
}

func TestParseLabelRejectsUnderscoreUnderStrictCharset(t *testing.T) {
	_, err := ParseLabel("_xmpp-server", CharsetLDH)
	if !errors.Is(err, ErrInvalidLabel) {
		t.Fatalf("err = %v, want ErrInvalidLabel", err)
	}
	t.Log("underscore rejected under strict LDH charset")
}

func TestParseLabelAcceptsUnderscoreUnderRelaxedCharset(t *testing.T) {
	lbl, err := ParseLabel("_xmpp-server", CharsetLDHUnderscore)
	if err != nil {
		t.Fatalf("ParseLabel: %v", err)
	}
	if lbl.String() != "_xmpp-server" {
		t.Fatalf("String() = %q, want %q", lbl.String(), "_xmpp-server")
	}
	t.Log("underscore accepted under relaxed charset")
}

func TestParseLabelRejectsEmpty(t *testing.T) {
	if _, err := ParseLabel("", CharsetLDH); !errors.Is(err, ErrInvalidLabel) {
		t.Fatalf("err = %v, want ErrInvalidLabel", err)
	}
	t.Log("empty label rejected")
}

func TestParseLabelRejectsOversize(t *testing.T) {
	if _, err := ParseLabel(strings.Repeat("a", 64), CharsetLDH); !errors.Is(err, ErrInvalidLabel) {
		t.Fatalf("err = %v, want ErrInvalidLabel", err)
	}
	t.Log("64-octet label rejected")
}

func TestParseLabelMaxLengthAccepted(t *testing.T) {
	if _, err := ParseLabel(strings.Repeat("a", 63), CharsetLDH); err != nil {
		t.Fatalf("ParseLabel at max length: %v", err)
	}
	t.Log("63-octet label accepted")
}
