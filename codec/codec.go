// Package codec defines value serialization for byte-store providers.
// The prefcache core never touches bytes; codecs live at the provider edge
// (e.g. Redis hash fields, BigCache entries).
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
