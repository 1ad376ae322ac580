package main

import (
	"fmt"
	"strings"
)

// constraints is the raw puzzle feedback as typed by the user. WrongSpot[i]
// holds the letters known to be in the word but not at position i; it may be
// shorter than the word length.
type constraints struct {
	Absent    string
	WrongSpot []string
	Solved    string
}

// knowledge is everything known about the hidden word. It is immutable once
// built by newKnowledge.
type knowledge struct {
	rules     rules
	absent    letterSet
	wrongSpot []string // per position, distinct letters in alphabetical order
	solved    []byte   // wildcard where unknown
	required  [alphabetSize]int
}

// newKnowledge validates c against r. With strict set, wrong-spot letters
// that cannot all fit into the unsolved positions are rejected too.
func newKnowledge(r rules, c constraints, strict bool) (*knowledge, error) {
	if len(c.WrongSpot) > r.Length {
		return nil, constraintf("wrong-spot", "%d positions given for a %d letter word", len(c.WrongSpot), r.Length)
	}

	k := &knowledge{
		rules:     r,
		wrongSpot: make([]string, r.Length),
		solved:    make([]byte, r.Length),
	}

	absent := asciiLower(c.Absent)
	if err := onlyLetters("absent", absent); err != nil {
		return nil, err
	}
	k.absent = lettersOf(absent)

	wrongTotal := 0
	for i, s := range c.WrongSpot {
		s = asciiLower(s)
		if err := onlyLetters(wrongSpotField(i), s); err != nil {
			return nil, err
		}
		k.wrongSpot[i] = lettersOf(s).String()
		for j := 0; j < len(k.wrongSpot[i]); j++ {
			k.required[k.wrongSpot[i][j]-'a']++
		}
		wrongTotal += len(k.wrongSpot[i])
	}

	solved := asciiLower(c.Solved)
	if solved == "" {
		solved = strings.Repeat(string(wildcard), r.Length)
	}
	if len(solved) != r.Length {
		return nil, constraintf("solved", "length is %d, want %d", len(solved), r.Length)
	}
	unknown := 0
	for i := 0; i < len(solved); i++ {
		ch := solved[i]
		switch {
		case ch == wildcard:
			unknown++
		case isLower(ch):
			k.required[ch-'a']++
		default:
			return nil, constraintf("solved", "%q is not a letter or %q", ch, wildcard)
		}
		k.solved[i] = ch
	}

	if strict && unknown < wrongTotal {
		return nil, constraintf("wrong-spot", "%d wrong-spot letters cannot fit into %d unsolved positions", wrongTotal, unknown)
	}
	return k, nil
}

func onlyLetters(field, s string) error {
	for i := 0; i < len(s); i++ {
		if !isLower(s[i]) {
			return constraintf(field, "%q is not a letter", s[i])
		}
	}
	return nil
}

func wrongSpotField(i int) string { return fmt.Sprintf("wrong-spot-%d", i+1) }

// excluded returns the letters no candidate may contain.
func (k *knowledge) excluded() letterSet { return k.absent }

// possible returns the letters that may still appear in the word.
func (k *knowledge) possible() letterSet { return k.absent.complement() }

// viable reports whether word agrees with everything known.
//
// For each wrong-spot letter c at position i, word must not have c at i and
// must hold c at least as many times as c is called for across all
// wrong-spot positions and solved positions together, so feedback about
// repeated letters is honoured.
func (k *knowledge) viable(word string) bool {
	if len(word) != k.rules.Length {
		return false
	}

	var have [alphabetSize]int
	for i := 0; i < len(word); i++ {
		if !isLower(word[i]) {
			return false
		}
		have[word[i]-'a']++
	}

	for i, letters := range k.wrongSpot {
		for j := 0; j < len(letters); j++ {
			c := letters[j]
			if word[i] == c || have[c-'a'] < k.required[c-'a'] {
				return false
			}
		}
	}

	for i, c := range k.solved {
		if c != wildcard && word[i] != c {
			return false
		}
	}
	return true
}

// String summarises the knowledge for logs.
func (k *knowledge) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "absent=%q solved=%q", k.absent.String(), string(k.solved))
	for i, letters := range k.wrongSpot {
		if letters != "" {
			fmt.Fprintf(&b, " %s=%q", wrongSpotField(i), letters)
		}
	}
	return b.String()
}
