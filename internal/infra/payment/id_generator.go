// Package payment provides infrastructure implementations for payment-related domain services.
package payment

import (
	"math/rand/v2"
	"strings"

	"drugweb/internal/domain/service"
)

const idPrefix = "PAY"

// randomIDGenerator produces payment identifiers of the form "PAY" followed
// by a fixed number of random digits.
type randomIDGenerator struct{}

// NewRandomIDGenerator is the constructor for randomIDGenerator.
func NewRandomIDGenerator() service.PaymentIDGenerator {
	return &randomIDGenerator{}
}

// Generate returns a new candidate payment ID with the given number of digits.
// Uniqueness is not guaranteed here; callers must check the store and retry.
func (g *randomIDGenerator) Generate(digits int) string {
	var sb strings.Builder
	sb.Grow(len(idPrefix) + digits)
	sb.WriteString(idPrefix)
	for range digits {
		sb.WriteByte(byte('0' + rand.IntN(10)))
	}

	return sb.String()
}
