package main

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults for the five-letter puzzle.
const (
	defaultWordLength = 5
	defaultVowels     = "aeiou"
	wildcard          = '_'
)

// rules are the fixed parameters of a puzzle: how long words are and which
// letters count as vowels, in ranking order.
type rules struct {
	Length int
	Vowels string
}

func defaultRules() rules {
	return rules{Length: defaultWordLength, Vowels: defaultVowels}
}

func (r rules) validate() error {
	if r.Length <= 0 {
		return fmt.Errorf("word length must be > 0, got %d", r.Length)
	}
	if r.Vowels == "" {
		return errors.New("vowels must not be empty")
	}
	seen := newLetterSet()
	for i := 0; i < len(r.Vowels); i++ {
		c := r.Vowels[i]
		if !isLower(c) {
			return fmt.Errorf("vowels must be lowercase letters, got %q", r.Vowels)
		}
		if seen.has(c) {
			return fmt.Errorf("vowels contain duplicate %q", c)
		}
		seen.add(c)
	}
	return nil
}

// vowelsIn returns the vowels present in word, in the order given by vowels
// and without repeats.
func vowelsIn(word, vowels string) []byte {
	var found []byte
	for i := 0; i < len(vowels); i++ {
		if strings.IndexByte(word, vowels[i]) >= 0 {
			found = append(found, vowels[i])
		}
	}
	return found
}

// uniqueVowelCount is the ranking key used to order candidates.
func uniqueVowelCount(word, vowels string) int {
	return len(vowelsIn(word, vowels))
}

// normalizeWord lower-cases ASCII letters in s and reports whether it is a
// usable candidate: exactly length letters, all a-z.
func normalizeWord(s string, length int) (string, bool) {
	w := asciiLower(s)
	if len(w) != length {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if !isLower(w[i]) {
			return "", false
		}
	}
	return w, true
}
