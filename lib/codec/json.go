// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tidwall/jsonc"
)

// MarshalJSON encodes v as indented JSON with a trailing newline, the
// form written to state files so they diff cleanly and stay readable.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// UnmarshalJSON decodes JSON data into v. Comments and trailing commas
// are stripped first, so a hand-edited state file still loads.
func UnmarshalJSON(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	if err := decoder.Decode(v); err != nil {
		return err
	}
	// Anything after the first value means the file is not a single
	// object.
	if _, err := decoder.Token(); err != io.EOF {
		return errTrailingData
	}
	return nil
}
