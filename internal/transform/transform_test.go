// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/zenkaku/internal/scheme"
)

func fullwidth(t *testing.T) *scheme.Scheme {
	t.Helper()
	s, err := scheme.Builtins().Resolve("fullwidth")
	require.NoError(t, err)
	return s
}

func TestText(t *testing.T) {
	s := fullwidth(t)

	assert.Equal(t, "Room ２０４", Text(s, false, "Room 204"))
	assert.Equal(t, "Room 204", Text(s, true, "Room ２０４"))
}

func TestArgs(t *testing.T) {
	s := fullwidth(t)

	var out bytes.Buffer
	require.NoError(t, Args(s, false, []string{"Room 204", "Flight 815"}, &out))
	assert.Equal(t, "Room ２０４\nFlight ８１５\n", out.String())

	out.Reset()
	require.NoError(t, Args(s, true, []string{"Room ２０４"}, &out))
	assert.Equal(t, "Room 204\n", out.String())
}

func TestStream(t *testing.T) {
	tests := []struct {
		name    string
		reverse bool
		in      string
		want    string
	}{
		{
			name: "lines converted in order",
			in:   "line 1\nline 2\nline 3\n",
			want: "line １\nline ２\nline ３\n",
		},
		{
			name: "final line without terminator still processed",
			in:   "count 7",
			want: "count ７\n",
		},
		{
			name:    "reverse direction",
			reverse: true,
			in:      "Room ２０４\n",
			want:    "Room 204\n",
		},
		{
			name: "empty input produces no output",
			in:   "",
			want: "",
		},
		{
			name: "blank lines preserved",
			in:   "a 1\n\nb 2\n",
			want: "a １\n\nb ２\n",
		},
	}

	s := fullwidth(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Stream(s, tt.reverse, strings.NewReader(tt.in), &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}
