package main

// solve returns the catalog words consistent with k, most distinct vowels
// first. Words with the same vowel count keep their dictionary order.
func solve(c *catalog, k *knowledge) []string {
	ranked := c.rankExcluding(k.excluded())
	out := ranked[:0]
	for _, w := range ranked {
		if k.viable(w) {
			out = append(out, w)
		}
	}
	return out
}

// vowelGroup is a run of results sharing a unique vowel count.
type vowelGroup struct {
	Count int      `json:"vowels"`
	Words []string `json:"words"`
}

// groupByVowels splits ranked results into groups, keeping their order.
func groupByVowels(words []string, vowels string) []vowelGroup {
	var groups []vowelGroup
	for _, w := range words {
		n := uniqueVowelCount(w, vowels)
		if len(groups) == 0 || groups[len(groups)-1].Count != n {
			groups = append(groups, vowelGroup{Count: n})
		}
		last := &groups[len(groups)-1]
		last.Words = append(last.Words, w)
	}
	return groups
}
