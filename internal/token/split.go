package token

import "strconv"

// SplitNumAffix splits a word into its leading digit run, alphabetic core,
// and trailing digits: "32week4" -> (32, "week", 4). The trailing value is
// the concatenation of every digit after the core, and either digit run may
// be absent (yielding 0).
func SplitNumAffix(word string) (lead uint, core string, trail uint) {
	i := 0
	for i < len(word) && isDigit(word[i]) {
		i++
	}
	if i == len(word) {
		// All digits; callers handle pure numbers before splitting.
		i = 0
	}
	if n, err := strconv.ParseUint(word[:i], 10, 32); err == nil {
		lead = uint(n)
	}

	j := i
	for j < len(word) && !isDigit(word[j]) {
		j++
	}
	core = word[i:j]

	var digits []byte
	for k := j; k < len(word); k++ {
		if isDigit(word[k]) {
			digits = append(digits, word[k])
		}
	}
	if n, err := strconv.ParseUint(string(digits), 10, 32); err == nil {
		trail = uint(n)
	}
	return lead, core, trail
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
