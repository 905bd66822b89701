// Package uniuri generates cryptographically secure random strings, used
// for request IDs and admin token generation.
package uniuri

import "crypto/rand"

// StdLen is the default length, giving roughly 95 bits of entropy.
const StdLen = 16

// TokenLen is the length used for generated admin tokens.
const TokenLen = 32

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// New returns a new random string of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the given length, drawn from the
// alphanumeric alphabet. Bytes outside the unbiased range are rejected so
// every character is equally likely.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	// largest byte value that maps onto the alphabet without modulo bias
	maxByte := byte(255 - (256 % len(alphabet)))

	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if b > maxByte {
				continue
			}

			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				return string(out)
			}
		}
	}
}
