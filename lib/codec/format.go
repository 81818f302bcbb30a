// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// Format selects the on-disk encoding of a state file.
type Format int

const (
	// FormatJSON is indented JSON, read with JSONC tolerance.
	FormatJSON Format = iota
	// FormatCBOR is deterministic CBOR.
	FormatCBOR
)

func (format Format) String() string {
	switch format {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(format))
	}
}

// FormatForPath picks the encoding from the file extension: ".cbor"
// selects CBOR, anything else JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return FormatCBOR
	}
	return FormatJSON
}

// ResolveFormat interprets a configured format name. "auto" and the
// empty string defer to [FormatForPath].
func ResolveFormat(name, path string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return FormatForPath(path), nil
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return FormatJSON, fmt.Errorf("unknown format %q (expected auto, json, or cbor)", name)
	}
}

// Marshal encodes v in the given format.
func Marshal(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(v)
	case FormatCBOR:
		return MarshalCBOR(v)
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
}

// Unmarshal decodes data in the given format into v.
func Unmarshal(format Format, data []byte, v any) error {
	switch format {
	case FormatJSON:
		return UnmarshalJSON(data, v)
	case FormatCBOR:
		return UnmarshalCBOR(data, v)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}
