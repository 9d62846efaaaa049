// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

// Package config loads codec tunables — the things the wire format
// leaves as implementation choices, such as the pointer-hop cap, the
// maximum name length, and which label charset to accept — from a YAML
// file, the same library and default-then-unmarshal pattern the
// original daemon's config package used for server/zone settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dnswire/dnswire"
)

// yamlLimits is the YAML-facing shape of dnswire.Limits: a plain string
// for the charset, since YAML has no notion of dnswire.LabelCharset.
type yamlLimits struct {
	MaxNameOctets  int    `yaml:"max_name_octets"`
	MaxPointerHops int    `yaml:"max_pointer_hops"`
	LabelCharset   string `yaml:"label_charset"`
}

// LoadLimits reads and validates a YAML limits file, starting from
// dnswire.DefaultLimits() and overlaying whatever the file specifies —
// the same defaults-then-unmarshal idiom the daemon's LoadConfig used.
func LoadLimits(path string) (dnswire.Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dnswire.Limits{}, fmt.Errorf("read limits file: %w", err)
	}

	defaults := dnswire.DefaultLimits()
	y := yamlLimits{
		MaxNameOctets:  defaults.MaxNameOctets,
		MaxPointerHops: defaults.MaxPointerHops,
		LabelCharset:   charsetString(defaults.Charset),
	}
	if err := yaml.Unmarshal(data, &y); err != nil {
		return dnswire.Limits{}, fmt.Errorf("parse limits file: %w", err)
	}

	charset, err := parseCharset(y.LabelCharset)
	if err != nil {
		return dnswire.Limits{}, fmt.Errorf("parse limits file: %w", err)
	}

	limits := dnswire.Limits{
		MaxNameOctets:  y.MaxNameOctets,
		MaxPointerHops: y.MaxPointerHops,
		Charset:        charset,
	}
	if err := limits.Validate(); err != nil {
		return dnswire.Limits{}, fmt.Errorf("validate limits: %w", err)
	}
	return limits, nil
}

func parseCharset(s string) (dnswire.LabelCharset, error) {
	switch s {
	case "ldh":
		return dnswire.CharsetLDH, nil
	case "ldh_underscore":
		return dnswire.CharsetLDHUnderscore, nil
	default:
		return 0, fmt.Errorf("label_charset must be \"ldh\" or \"ldh_underscore\", got %q", s)
	}
}

func charsetString(c dnswire.LabelCharset) string {
	if c == dnswire.CharsetLDHUnderscore {
		return "ldh_underscore"
	}
	return "ldh"
}

// NewDecoder builds a dnswire.Decoder configured from limits loaded via
// LoadLimits (or dnswire.DefaultLimits()).
func NewDecoder(limits dnswire.Limits) *dnswire.Decoder {
	return dnswire.NewDecoder(limits)
}
