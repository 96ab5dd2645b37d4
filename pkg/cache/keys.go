package cache

// KeyPrefix starts every key generated by [DefaultKeyer].
const KeyPrefix = "orbital"

// Keyer derives cache keys for rendered documents.
type Keyer interface {
	// AttributesKey is the key of the JSON attribute document of index.
	AttributesKey(fingerprint string, index uint64) string
	// ImageKey is the key of the SVG document of index.
	ImageKey(fingerprint string, index uint64) string
}

// DefaultKeyer hashes the engine fingerprint and index into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// AttributesKey implements [Keyer].
func (DefaultKeyer) AttributesKey(fingerprint string, index uint64) string {
	return hashKey(KeyPrefix+":attrs", fingerprint, index)
}

// ImageKey implements [Keyer].
func (DefaultKeyer) ImageKey(fingerprint string, index uint64) string {
	return hashKey(KeyPrefix+":image", fingerprint, index)
}
