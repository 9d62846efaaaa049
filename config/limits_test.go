// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"dnswire/dnswire"
)

func writeLimitsFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadLimitsOverlaysDefaults(t *testing.T) {
	path := writeLimitsFile(t, "max_pointer_hops: 32\n")

	limits, err := LoadLimits(path)
	if err != nil {
		t.Fatalf("LoadLimits: %v", err)
	}
	if limits.MaxPointerHops != 32 {
		t.Errorf("MaxPointerHops = %d, want 32", limits.MaxPointerHops)
	}
	if limits.MaxNameOctets != dnswire.DefaultLimits().MaxNameOctets {
		t.Errorf("MaxNameOctets = %d, want default %d", limits.MaxNameOctets, dnswire.DefaultLimits().MaxNameOctets)
	}
	if limits.Charset != dnswire.CharsetLDHUnderscore {
		t.Errorf("Charset = %v, want CharsetLDHUnderscore (the default)", limits.Charset)
	}
	t.Log("limits.yaml overlay applied on top of the defaults")
}

func TestLoadLimitsStrictCharset(t *testing.T) {
	path := writeLimitsFile(t, "label_charset: ldh\n")

	limits, err := LoadLimits(path)
	if err != nil {
		t.Fatalf("LoadLimits: %v", err)
	}
	if limits.Charset != dnswire.CharsetLDH {
		t.Errorf("Charset = %v, want CharsetLDH", limits.Charset)
	}
	t.Log("strict LDH charset loaded from YAML")
}

func TestLoadLimitsRejectsUnknownCharset(t *testing.T) {
	path := writeLimitsFile(t, "label_charset: weird\n")
	if _, err := LoadLimits(path); err == nil {
		t.Fatal("expected an error for an unknown label_charset")
	}
	t.Log("unknown label_charset rejected")
}

func TestLoadLimitsRejectsOutOfRangeNameOctets(t *testing.T) {
	path := writeLimitsFile(t, "max_name_octets: 9000\n")
	if _, err := LoadLimits(path); err == nil {
		t.Fatal("expected an error for max_name_octets exceeding the RFC 1035 bound")
	}
	t.Log("out-of-range max_name_octets rejected")
}

func TestLoadLimitsMissingFile(t *testing.T) {
	if _, err := LoadLimits(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	t.Log("missing limits file rejected")
}

func TestNewDecoderBuildsUsableDecoder(t *testing.T) {
	dec := NewDecoder(dnswire.DefaultLimits())
	if dec == nil {
		t.Fatal("NewDecoder returned nil")
	}
	t.Log("NewDecoder builds a usable decoder from loaded limits")
}
