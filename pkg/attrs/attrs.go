// Package attrs defines the canonical attribute document shared by every
// generator engine.
//
// A [Set] is an ordered list of key/value pairs. Order is part of the
// output: JSON encodes keys in insertion order, so two sets built by the same
// code always serialize to the same bytes. Values are either strings or
// unsigned integers; nothing else can appear in token metadata.
package attrs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a single attribute value: a string or an unsigned integer.
type Value struct {
	str     string
	num     uint64
	numeric bool
}

// String returns a string value.
func String(s string) Value { return Value{str: s} }

// Uint returns a numeric value.
func Uint(n uint64) Value { return Value{num: n, numeric: true} }

// IsNumeric reports whether v holds an integer.
func (v Value) IsNumeric() bool { return v.numeric }

// Uint returns the integer held by v, or 0 for string values.
func (v Value) Uint() uint64 { return v.num }

// String returns the text form of v. Integers are rendered in base 10.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatUint(v.num, 10)
	}
	return v.str
}

func (v Value) any() any {
	if v.numeric {
		return v.num
	}
	return v.str
}

// Entry is one key/value pair of a Set.
type Entry struct {
	Key   string
	Value Value
}

// Set is an ordered attribute document. The zero value is empty and ready
// to use. Sets are built once by a generator and not modified afterwards.
type Set struct {
	entries []Entry
}

// New builds a Set from entries, keeping their order. Duplicate keys are a
// programming error and panic.
func New(entries ...Entry) Set {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Key] {
			panic(fmt.Sprintf("attrs: duplicate key %q", e.Key))
		}
		seen[e.Key] = true
	}
	return Set{entries: append([]Entry(nil), entries...)}
}

// Len returns the number of entries.
func (s Set) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in order.
func (s Set) Entries() []Entry { return append([]Entry(nil), s.entries...) }

// Keys returns the keys in order.
func (s Set) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the value stored under key.
func (s Set) Get(key string) (Value, bool) {
	for _, e := range s.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON encodes the set as a JSON object with keys in insertion order
// and no insignificant whitespace.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if e.Value.numeric {
			buf.WriteString(strconv.FormatUint(e.Value.num, 10))
			continue
		}
		v, err := json.Marshal(e.Value.str)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map returns the set as a plain map, for consumers that do not care about
// order (document stores, templates).
func (s Set) Map() map[string]any {
	m := make(map[string]any, len(s.entries))
	for _, e := range s.entries {
		m[e.Key] = e.Value.any()
	}
	return m
}
