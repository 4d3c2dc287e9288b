package tools

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	dErrors "normalro/pkg/domain-errors"
)

const (
	MinPasswordLength     = 4
	MaxPasswordLength     = 64
	DefaultPasswordLength = 12

	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.<>/?"
)

// PasswordOptions selects the length and character sets.
type PasswordOptions struct {
	Length    int  `json:"-"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// ClampPasswordLength limits n to [MinPasswordLength, MaxPasswordLength].
func ClampPasswordLength(n int) int {
	return max(MinPasswordLength, min(n, MaxPasswordLength))
}

// PasswordGenerator draws from a cryptographic random source.
type PasswordGenerator struct {
	random io.Reader
}

// NewPasswordGenerator uses crypto/rand when random is nil.
func NewPasswordGenerator(random io.Reader) *PasswordGenerator {
	if random == nil {
		random = rand.Reader
	}
	return &PasswordGenerator{random: random}
}

// Generate returns a password of the clamped length containing at least one
// character from every selected set, in shuffled order.
func (g *PasswordGenerator) Generate(opts PasswordOptions) (string, error) {
	var sets []string
	if opts.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if opts.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if opts.Numbers {
		sets = append(sets, digitChars)
	}
	if opts.Symbols {
		sets = append(sets, symbolChars)
	}
	if len(sets) == 0 {
		return "", dErrors.New(dErrors.CodeNoCharsetSelected, "select at least one character set")
	}

	length := ClampPasswordLength(opts.Length)
	pool := ""
	out := make([]byte, 0, length)
	for _, set := range sets {
		pool += set
		c, err := g.pick(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates, so the guaranteed characters are not always first.
	for i := len(out) - 1; i > 0; i-- {
		j, err := g.intN(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func (g *PasswordGenerator) pick(set string) (byte, error) {
	i, err := g.intN(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func (g *PasswordGenerator) intN(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
