// Package password wraps bcrypt for credential hashing. Hashing is salted and
// deliberately expensive; the cost factor is tunable so deployments can keep
// pace with hardware.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies plaintext passwords.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// legal bcrypt range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted one-way hash of plaintext. Repeated calls with the
// same input yield different hashes.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. The comparison is
// constant-time with respect to the password. A malformed stored hash is
// treated as a mismatch, never as an error.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
