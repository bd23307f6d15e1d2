// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform applies a scheme to text supplied by the CLI, either as
// command arguments or as successive lines from a reader. Lines are
// processed independently and in order; the core never blocks on I/O.
package transform

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/zenkaku/internal/scheme"
)

// Text runs one logical text through s in the requested direction.
func Text(s *scheme.Scheme, reverse bool, text string) string {
	if reverse {
		return s.Decode(text)
	}
	return s.Encode(text)
}

// Args joins the command arguments into one logical text, converts it, and
// writes the result to w with a trailing newline. Multiple arguments are
// newline-joined, matching what a shell would have piped in line by line.
func Args(s *scheme.Scheme, reverse bool, args []string, w io.Writer) error {
	_, err := fmt.Fprintln(w, Text(s, reverse, strings.Join(args, "\n")))
	return err
}

// Stream reads lines from r, converts each independently, and writes each
// result to w with a trailing newline, preserving input order. It returns
// the first read or write error; a final line without a terminator is still
// processed.
func Stream(s *scheme.Scheme, reverse bool, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, Text(s, reverse, sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
