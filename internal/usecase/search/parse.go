package search

import "strings"

// firstJSONObject returns the substring from the first '{' to the last '}'.
// Chat completions routinely wrap JSON in prose or code fences; the greedy
// span is decoded as-is and rejected by the caller if invalid.
func firstJSONObject(s string) (string, bool) {
	return spanBetween(s, '{', '}')
}

// firstJSONArray returns the substring from the first '[' to the last ']'.
func firstJSONArray(s string) (string, bool) {
	return spanBetween(s, '[', ']')
}

func spanBetween(s string, opening, closing byte) (string, bool) {
	start := strings.IndexByte(s, opening)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(s, closing)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}
