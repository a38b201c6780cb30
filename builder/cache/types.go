// Package cache remembers the content hash each post had when it was
// last rendered, so unchanged posts can be skipped.
package cache

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Entry is one stored hash in the bolt backend.
type Entry struct {
	Hash      string `msgpack:"hash"`
	UpdatedAt int64  `msgpack:"updated_at"`
}

// Encode serializes a value to msgpack bytes
func Encode(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode deserializes msgpack bytes to a value
func Decode(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
