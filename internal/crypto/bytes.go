package crypto

import (
	"encoding/base64"
	"runtime"
)

// Wipe overwrites b with zeros once the caller is done with key material or
// decrypted secrets.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// keeps the stores above from being elided
	runtime.KeepAlive(&b)
}

// B64 renders b as unwrapped standard base64, e.g. for logging public keys.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }
