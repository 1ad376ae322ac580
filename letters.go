package main

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// alphabetSize is the number of lowercase Latin letters.
const alphabetSize = 26

// letterSet is a set of lowercase letters a-z.
type letterSet struct {
	bits *bitset.BitSet
}

func newLetterSet() letterSet {
	return letterSet{bits: bitset.New(alphabetSize)}
}

// lettersOf builds a set from s. Characters outside a-z are ignored; callers
// validate input first.
func lettersOf(s string) letterSet {
	ls := newLetterSet()
	for i := 0; i < len(s); i++ {
		ls.add(s[i])
	}
	return ls
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

// asciiLower folds A-Z to a-z and leaves every other byte alone, so non-ASCII
// input never turns into a letter.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func (ls letterSet) add(c byte) {
	if !isLower(c) {
		return
	}
	ls.bits.Set(uint(c - 'a'))
}

func (ls letterSet) has(c byte) bool {
	if ls.bits == nil || !isLower(c) {
		return false
	}
	return ls.bits.Test(uint(c - 'a'))
}

func (ls letterSet) len() int {
	if ls.bits == nil {
		return 0
	}
	return int(ls.bits.Count())
}

// complement returns every letter not in ls.
func (ls letterSet) complement() letterSet {
	if ls.bits == nil {
		ls = newLetterSet()
	}
	return letterSet{bits: ls.bits.Complement()}
}

// anyIn reports whether word contains a letter of ls.
func (ls letterSet) anyIn(word string) bool {
	if ls.len() == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if ls.has(word[i]) {
			return true
		}
	}
	return false
}

// String returns the letters in alphabetical order.
func (ls letterSet) String() string {
	if ls.bits == nil {
		return ""
	}
	var b strings.Builder
	for i, ok := ls.bits.NextSet(0); ok && i < alphabetSize; i, ok = ls.bits.NextSet(i + 1) {
		b.WriteByte(byte('a' + i))
	}
	return b.String()
}
