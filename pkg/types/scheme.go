// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data types zenkaku exposes to callers and
// machine-readable output.
package types

// SchemeInfo describes one conversion scheme for the `schemes` listing.
type SchemeInfo struct {
	// Name is the scheme's unique lowercase name (e.g. "fullwidth").
	Name string `json:"name" yaml:"name"`

	// Digits holds the glyph for each digit value 0-9, in order.
	Digits [10]string `json:"digits" yaml:"digits,flow"`
}

// Config holds the tool configuration read from zenkaku.yaml or the
// environment.
type Config struct {
	// Type is the default scheme name used when --type is not given.
	Type string `json:"type" yaml:"type" mapstructure:"type"`
}
