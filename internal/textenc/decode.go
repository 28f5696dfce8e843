// Package textenc decodes source files under a fixed encoding ladder:
// UTF-8 first, then latin-1, cp1252 and iso-8859-1.
package textenc

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var ErrUndecodable = errors.New("textenc: could not decode file with any configured encoding")

type candidate struct {
	name string
	enc  *charmap.Charmap
}

// Ladder order matters: the first decoder that accepts the bytes wins.
// The single-byte charmaps accept any byte sequence, so in practice the
// ladder terminates at latin-1 for non-UTF-8 input; the later entries
// stay configured for parity with the documented fallback list.
var ladder = []candidate{
	{name: "latin-1", enc: charmap.ISO8859_1},
	{name: "cp1252", enc: charmap.Windows1252},
	{name: "iso-8859-1", enc: charmap.ISO8859_1},
}

// Decode returns the decoded text and the name of the encoding used.
func Decode(b []byte) (string, string, error) {
	if utf8.Valid(b) {
		return string(b), "utf-8", nil
	}
	for _, c := range ladder {
		dec := c.enc.NewDecoder()
		out, err := decodeStrict(dec, b)
		if err != nil {
			continue
		}
		return out, c.name, nil
	}
	return "", "", ErrUndecodable
}

// ReadFile reads path and decodes it under the ladder.
func ReadFile(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("textenc: %w", err)
	}
	return Decode(b)
}

func decodeStrict(dec *encoding.Decoder, b []byte) (string, error) {
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
