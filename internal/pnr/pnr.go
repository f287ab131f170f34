// Package pnr generates passenger name record codes: the sole external
// identifier of a persisted booking.
package pnr

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length   = 10
)

// Generate returns a 10-character code drawn uniformly from A-Z0-9. There is
// no checksum; uniqueness against the store is the booking service's job.
func Generate() (string, error) {
	const op = "pnr.Generate"

	out := make([]byte, 0, Length)
	buf := make([]byte, 16)

	for len(out) < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		for _, b := range buf {
			// Reject the tail of the byte range so every letter and digit
			// stays equally likely.
			if b >= 252 {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}

	return string(out), nil
}
