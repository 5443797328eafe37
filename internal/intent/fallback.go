package intent

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The fallback title is the shortest run of words after a creation verb (and
// an optional "a") that ends at a connective, a period or the end of the text.
// A run that starts with a task noun is not a title. FallbackTitlePattern is
// the same rule written as a backtracking expression; this scan runs in time
// linear in the text instead.
var (
	fallbackVerbRe = regexp.MustCompile(`add|create|make|new`)
	fallbackWordRe = regexp.MustCompile(`[\p{L}\p{Mn}\p{Nd}\p{Pc}]+`)
)

var (
	fallbackNouns       = []string{"task", "todo", "item", "note", "reminder"}
	fallbackConnectives = []string{"and", "for", "by", "on", "at"}
)

func fallbackTitle(text string) (string, bool) {
	verbs := fallbackVerbRe.FindAllStringIndex(text, -1)
	if len(verbs) == 0 {
		return "", false
	}
	words := fallbackWordRe.FindAllStringIndex(text, -1)
	if len(words) == 0 {
		return "", false
	}

	wordAt := make(map[int]int, len(words))
	for i, w := range words {
		wordAt[w[0]] = i
	}

	// runEnd[i] is the end offset of the shortest title starting at word i, or -1.
	runEnd := make([]int, len(words))
	for i := len(words) - 1; i >= 0; i-- {
		end := words[i][1]
		switch {
		case closesTitle(text, end):
			runEnd[i] = end
		case i+1 < len(words) && words[i+1][0] > end && isSpaceRun(text[end:words[i+1][0]]):
			runEnd[i] = runEnd[i+1]
		default:
			runEnd[i] = -1
		}
	}

	for _, v := range verbs {
		p := skipSpace(text, v[1])
		if p == v[1] {
			continue
		}

		starts := make([]int, 0, 2)
		if strings.HasPrefix(text[p:], "a") {
			if q := skipSpace(text, p+1); q > p+1 {
				starts = append(starts, q)
			}
		}
		starts = append(starts, p)

		for _, s := range starts {
			if hasAnyPrefix(text[s:], fallbackNouns) {
				continue
			}
			i, ok := wordAt[s]
			if !ok || runEnd[i] < 0 {
				continue
			}
			return strings.TrimSpace(text[s:runEnd[i]]), true
		}
	}
	return "", false
}

func closesTitle(text string, end int) bool {
	if end == len(text) || text[end] == '.' {
		return true
	}
	q := skipSpace(text, end)
	return q > end && hasAnyPrefix(text[q:], fallbackConnectives)
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isSpaceRun(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
