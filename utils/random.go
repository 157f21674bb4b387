package utils

import (
	"math/rand/v2"
	"strings"
)

const idTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// IDTokenLength is the fixed token width of generated identifiers.
const IDTokenLength = 8

// GenerateID returns a "PREFIX_token" identifier with a fixed-length
// uppercase alphanumeric token. The source is deliberately non-cryptographic:
// the contract is low collision probability within one session; durable
// uniqueness is owned by the persistence layer.
func GenerateID(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + 1 + IDTokenLength)
	b.WriteString(prefix)
	b.WriteByte('_')
	for i := 0; i < IDTokenLength; i++ {
		b.WriteByte(idTokenAlphabet[rand.IntN(len(idTokenAlphabet))])
	}
	return b.String()
}
