package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIDGenerator_Format(t *testing.T) {
	gen := NewRandomIDGenerator()

	for range 100 {
		id := gen.Generate(6)
		assert.Len(t, id, 9)
		assert.True(t, strings.HasPrefix(id, "PAY"))
		for _, r := range id[3:] {
			assert.True(t, r >= '0' && r <= '9', "expected digit, got %q in %s", r, id)
		}
	}
}

func TestRandomIDGenerator_WiderIDs(t *testing.T) {
	gen := NewRandomIDGenerator()

	id := gen.Generate(8)
	assert.Len(t, id, 11)
	assert.True(t, strings.HasPrefix(id, "PAY"))
}
