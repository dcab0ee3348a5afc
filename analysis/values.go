/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Number is a numeric field that accepts JSON numbers as well as numeric
// strings. Raw keeps the text as received for display.
type Number struct {
	Value float64
	Raw   string
	Valid bool
}

// NewNumber returns a valid Number for v.
func NewNumber(v float64) Number {
	return Number{Value: v, Raw: strconv.FormatFloat(v, 'f', -1, 64), Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = ParseNumber(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*n = Number{Value: f, Raw: string(data), Valid: true}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		if n.Raw == "" {
			return []byte("null"), nil
		}
		return json.Marshal(n.Raw)
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// ParseNumber reads the leading decimal number of s. Unparsable text yields
// NaN with Valid false, keeping the raw text for display.
func ParseNumber(s string) Number {
	trimmed := strings.TrimSpace(s)

	match := leadingFloat.FindString(trimmed)
	if match == "" {
		return Number{Value: math.NaN(), Raw: s}
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return Number{Value: math.NaN(), Raw: s}
	}

	return Number{Value: f, Raw: s, Valid: true}
}

// Float returns the numeric value, or 0 when the field was absent.
func (n Number) Float() float64 {
	if !n.Valid && n.Raw == "" {
		return 0
	}
	return n.Value
}

// String returns the value as received.
func (n Number) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	if n.Valid {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return ""
}

// Text is a scalar shown verbatim. Strings, numbers and booleans are all
// accepted; null, a zero number and false count as absent.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case data[0] == '[' || data[0] == '{':
		*t = ""
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err == nil && f == 0 {
			*t = ""
			return nil
		}
		*t = Text(data)
	}

	return nil
}

// OrNA returns the text or "N/A" when it is empty.
func (t Text) OrNA() string {
	if t == "" {
		return "N/A"
	}
	return string(t)
}

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Non-string array items are skipped.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		var out StringList
		for _, part := range strings.Split(s, ",") {
			if strings.TrimSpace(part) != "" {
				out = append(out, part)
			}
		}
		*l = out
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(StringList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	*l = out

	return nil
}

// First returns the first entry, or "" for an empty list.
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}
