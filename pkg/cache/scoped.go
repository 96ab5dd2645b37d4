package cache

// ScopedKeyer wraps a Keyer with a prefix so several collections can share
// one backend without their entries colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "alkane-royalty-nft:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AttributesKey generates a prefixed attribute key.
func (k *ScopedKeyer) AttributesKey(fingerprint string, index uint64) string {
	return k.prefix + k.inner.AttributesKey(fingerprint, index)
}

// ImageKey generates a prefixed image key.
func (k *ScopedKeyer) ImageKey(fingerprint string, index uint64) string {
	return k.prefix + k.inner.ImageKey(fingerprint, index)
}
