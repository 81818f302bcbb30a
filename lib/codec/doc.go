// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the encodings used for storyboard state files.
//
// Two formats are supported, chosen per file:
//
//   - JSON (the default): written indented with a trailing newline so
//     the file is readable and diffs cleanly. Reads go through
//     tidwall/jsonc first, so comments and trailing commas left by a
//     hand edit do not make the file unreadable.
//   - CBOR (files ending in ".cbor"): Core Deterministic Encoding (RFC
//     8949 §4.2) with sorted map keys and smallest integer encoding.
//     Same logical data always produces identical bytes.
//
// Buffer-oriented helpers take the format explicitly:
//
//	format := codec.FormatForPath(path)
//	data, err := codec.Marshal(format, state)
//	err = codec.Unmarshal(format, data, &state)
//
// # Struct Tag Rules
//
// Types persisted by storyboard carry only `json` tags. fxamacker/cbor
// v2 reads `json` tags as a fallback when `cbor` tags are absent, so a
// single tag controls field naming for both formats. Never put both tags
// on the same field.
package codec
