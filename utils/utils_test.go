package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransactionIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN\d+$`)

	id := GenerateTransactionID()
	assert.Regexp(t, pattern, id)
}

func TestGenerateTransactionIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 500; i++ {
		id := GenerateTransactionID()
		assert.False(t, seen[id], "duplicate transaction id: %s", id)
		seen[id] = true
	}
}
