// Package encoding renders command results as text, JSON or CBOR.
package encoding

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Format selects how records are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	// FormatCBOR writes each record as one line of hex-encoded CBOR.
	FormatCBOR Format = "cbor"
)

// ParseFormat accepts "text", "json" or "cbor", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or cbor)", s)
	}
}

// Record is a command result. Struct fields use json tags, which the CBOR
// encoder honours as well.
type Record interface {
	// Text returns the human-readable rendering, one or more lines.
	Text() string
}

// Marshal encodes v as JSON or hex-encoded CBOR.
func Marshal(f Format, v interface{}) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.Marshal(v)
	case FormatCBOR:
		b, err := cbor.Marshal(v)
		if err != nil {
			return nil, err
		}
		return []byte(hex.EncodeToString(b)), nil
	default:
		return nil, fmt.Errorf("format %q has no binary form", f)
	}
}

// Unmarshal is the inverse of Marshal.
func Unmarshal(f Format, data []byte, v interface{}) error {
	switch f {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatCBOR:
		raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return fmt.Errorf("invalid cbor hex: %w", err)
		}
		return cbor.Unmarshal(raw, v)
	default:
		return fmt.Errorf("format %q has no binary form", f)
	}
}

// Write renders rec on w followed by a newline.
func Write(w io.Writer, f Format, rec Record) error {
	var line string
	switch f {
	case FormatText, "":
		line = strings.TrimRight(rec.Text(), "\n")
	default:
		b, err := Marshal(f, rec)
		if err != nil {
			return err
		}
		line = string(b)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
