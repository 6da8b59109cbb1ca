// SPDX-License-Identifier: MPL-2.0

// Package randstr generates short alphanumeric tokens for naming temporary
// files and directories.
//
// Tokens are uniformly distributed over the alphabet, but they are meant
// for disambiguation. Use crypto/rand directly for secrets.
package randstr

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Alphabet lists the characters a token is drawn from, in mapping order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// rejectAbove is the largest multiple of len(Alphabet) that fits in a byte.
// Bytes at or above it are discarded so every character is equally likely.
const rejectAbove = 256 - 256%len(Alphabet)

// Generator draws tokens from Source.
type Generator struct {
	// Source supplies random bytes. Nil means crypto/rand.Reader.
	Source io.Reader
}

var defaultGenerator = Generator{}

// Token returns a random string of length n drawn from Alphabet.
// A non-positive n yields the empty string.
func Token(n int) string {
	s, err := defaultGenerator.Token(n)
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic(fmt.Sprintf("randstr: reading crypto/rand: %v", err))
	}
	return s
}

// Token returns a random string of length n drawn from Alphabet.
func (g Generator) Token(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	src := g.Source
	if src == nil {
		src = rand.Reader
	}

	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
