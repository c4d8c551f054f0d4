// Package shared holds small helpers used by both the client and the server.
package shared

// WipeByteArray zeroes the contents of b in place. Call it on buffers that
// held secrets, such as passwords read from the terminal, once the secret
// has been consumed.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
