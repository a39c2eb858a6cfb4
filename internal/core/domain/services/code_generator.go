package services

import (
	"errors"
	"math/rand/v2"

	"parcels/internal/core/domain/model/confirmation"
)

// ErrRandomSourceIsRequired is returned when constructing a CodeGenerator
// without a random source.
var ErrRandomSourceIsRequired = errors.New("random source is required")

// RandomSource yields uniform random integers for code generation.
// Implemented by math/rand/v2 in production and by deterministic stubs
// in tests.
type RandomSource interface {
	// IntN returns a uniform random int in [0, n).
	IntN(n int) int
}

// CodeGenerator produces confirmation codes: strings of exactly
// confirmation.CodeLength characters drawn independently and uniformly from
// confirmation.Alphabet. The generator holds no state beyond its source and
// performs no I/O.
type CodeGenerator struct {
	src RandomSource
}

// NewCodeGenerator creates a generator backed by the given random source.
func NewCodeGenerator(src RandomSource) (CodeGenerator, error) {
	if src == nil {
		return CodeGenerator{}, ErrRandomSourceIsRequired
	}
	return CodeGenerator{src: src}, nil
}

// NewDefaultCodeGenerator creates a generator backed by math/rand/v2.
func NewDefaultCodeGenerator() CodeGenerator {
	return CodeGenerator{src: mathRandSource{}}
}

// Generate returns a fresh confirmation code.
func (g CodeGenerator) Generate() string {
	buf := make([]byte, confirmation.CodeLength)
	for i := range buf {
		buf[i] = confirmation.Alphabet[g.src.IntN(len(confirmation.Alphabet))]
	}
	return string(buf)
}

type mathRandSource struct{}

func (mathRandSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // confirmation codes are not security credentials
}
