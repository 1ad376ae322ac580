package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// catalog is the ordered list of candidate words read from a dictionary.
// It is built once and only read afterwards.
type catalog struct {
	rules    rules
	words    []string
	rejected int
}

func newCatalog(r rules, words ...string) *catalog {
	return &catalog{rules: r, words: words}
}

// loadCatalog reads one word per line. A line may carry extra tab-separated
// fields after the word; they are ignored. Lines that do not hold a word of
// the right length made only of letters a-z are skipped and counted, however
// long they are.
func loadCatalog(src io.Reader, r rules) (*catalog, error) {
	c := newCatalog(r)
	br := bufio.NewReader(src)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		c.add(line)
		if err != nil {
			return c, nil
		}
	}
}

// add keeps the word on line if it is usable.
func (c *catalog) add(line string) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if line == "" {
		return
	}
	field, _, _ := strings.Cut(line, "\t")
	w, ok := normalizeWord(field, c.rules.Length)
	if !ok {
		c.rejected++
		return
	}
	c.words = append(c.words, w)
}

func (c *catalog) len() int { return len(c.words) }

// rankExcluding returns the words containing none of excluded, highest unique
// vowel count first. Words with equal counts keep catalog order.
func (c *catalog) rankExcluding(excluded letterSet) []string {
	maxCount := len(c.rules.Vowels)
	buckets := make([][]string, maxCount+1)
	for _, w := range c.words {
		if excluded.anyIn(w) {
			continue
		}
		n := uniqueVowelCount(w, c.rules.Vowels)
		buckets[n] = append(buckets[n], w)
	}

	out := make([]string, 0, len(c.words))
	for n := maxCount; n >= 0; n-- {
		out = append(out, buckets[n]...)
	}
	return out
}
