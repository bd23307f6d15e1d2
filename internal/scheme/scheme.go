// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scheme implements bidirectional mappings between ASCII digits and
// alternate Unicode digit glyphs. Each Scheme pairs a forward table (digit
// value to glyph codepoint) with a reverse lookup derived from it, and the
// Registry selects among named schemes.
package scheme

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Scheme is a named bidirectional mapping between the ASCII digits 0-9 and
// ten Unicode glyphs. Schemes are immutable after construction; Encode and
// Decode are pure functions and safe for concurrent use.
type Scheme struct {
	name    string
	glyphs  [10]rune
	reverse map[rune]byte
}

// New builds a Scheme from a name and a forward table of ten glyphs, one per
// digit value 0-9. It enforces the bijection invariant: the glyphs must be
// distinct, and none may itself be an ASCII digit (that would make Decode
// rewrite its own output).
func New(name string, glyphs [10]rune) (*Scheme, error) {
	reverse := make(map[rune]byte, len(glyphs))
	for d, g := range glyphs {
		if g >= '0' && g <= '9' {
			return nil, fmt.Errorf("scheme %s: digit %d maps to ASCII digit %q", name, d, g)
		}
		if prev, ok := reverse[g]; ok {
			return nil, fmt.Errorf("scheme %s: glyph %q assigned to both %c and %d", name, g, prev, d)
		}
		reverse[g] = byte('0' + d)
	}
	return &Scheme{name: name, glyphs: glyphs, reverse: reverse}, nil
}

// Name returns the scheme's unique lowercase name.
func (s *Scheme) Name() string {
	return s.name
}

// Glyphs returns the forward table: the glyph for each digit value 0-9.
func (s *Scheme) Glyphs() [10]rune {
	return s.glyphs
}

// Encode replaces each ASCII digit in text with the scheme's glyph for it.
// All other bytes, including multi-byte UTF-8 sequences already present in
// the input, are copied through unchanged; only ASCII digits trigger
// substitution, so the scan is a plain byte loop.
func (s *Scheme) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '0' && c <= '9' {
			b.WriteRune(s.glyphs[c-'0'])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Decode replaces each of the scheme's glyphs in text with the ASCII digit
// it encodes. Codepoints belonging to other schemes, and any other rune, are
// copied through unchanged. Malformed or truncated UTF-8 sequences are
// copied byte-for-byte; Decode never fails.
func (s *Scheme) Decode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid byte, not a real U+FFFD in the input.
			b.WriteByte(text[i])
			i++
			continue
		}
		if d, ok := s.reverse[r]; ok {
			b.WriteByte(d)
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}
