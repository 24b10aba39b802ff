package store

import "strings"

// fuzzyScore rates how well query matches candidate as an ordered,
// case-insensitive subsequence: +8 per matched character, -1 (floored at
// zero overall progress) per candidate character skipped between matches.
// Empty inputs never match.
func fuzzyScore(query, candidate string) int {
	if query == "" || candidate == "" {
		return 0
	}
	q := []rune(strings.ToLower(query))
	c := []rune(strings.ToLower(candidate))

	score := 0
	last := 0
	qi := 0
	for qi < len(q) {
		cur := q[qi]
		qi++
		for i, cc := range c[last:] {
			if cc == cur {
				score += 8
				last = i
				if qi >= len(q) {
					break
				}
				cur = q[qi]
				qi++
			} else if score > 0 {
				score--
			}
		}
	}
	return score
}

// bestMatch returns the index of the highest-scoring reminder for the query,
// or -1 when no title scores above zero. Ties keep the first in list order.
func (s *Store) bestMatch(query string) int {
	best, bestScore := -1, 0
	for i := range s.reminders {
		if score := fuzzyScore(query, s.reminders[i].Title); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
