package attrs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys,
// smallest integer encoding, no indefinite-length items. The same set always
// produces identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("attrs: CBOR encoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes the set as a deterministic CBOR map. Unlike JSON the
// key order is canonical (shorter keys first, then bytewise) rather than
// insertion order.
func (s Set) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(s.Map())
}

// UnmarshalCBOR decodes a CBOR map produced by MarshalCBOR. Entries come
// back in canonical key order.
func UnmarshalCBOR(data []byte) (Set, error) {
	var m map[string]any
	if err := cbor.Unmarshal(data, &m); err != nil {
		return Set{}, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			entries = append(entries, Entry{Key: k, Value: String(v)})
		case uint64:
			entries = append(entries, Entry{Key: k, Value: Uint(v)})
		default:
			return Set{}, fmt.Errorf("attrs: unsupported value %T for key %q", v, k)
		}
	}
	return New(entries...), nil
}
