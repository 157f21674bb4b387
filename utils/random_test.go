package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^TNT_[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		id := GenerateID("TNT")
		assert.Regexp(t, pattern, id)
	}
}

func TestGenerateIDVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := GenerateID("ROOM")
		assert.False(t, seen[id], "duplicate id %s within one session", id)
		seen[id] = true
	}
}
