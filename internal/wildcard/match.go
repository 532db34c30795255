package wildcard

import (
	"os"
	"path/filepath"
)

const (
	unknown int8 = iota
	no
	yes
)

// Match reports whether path matches pattern.
func Match(path, pattern string) bool {
	m := newMatcher(filepath.FromSlash(path), filepath.FromSlash(pattern))
	return m.match(0, 0)
}

// MatchAny reports whether path matches at least one of patterns.
func MatchAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if Match(path, p) {
			return true
		}
	}
	return false
}

type matcher struct {
	pattern []rune
	subject []rune
	sep     rune
	memo    []int8
}

func newMatcher(subject, pattern string) *matcher {
	m := &matcher{
		pattern: []rune(pattern),
		subject: []rune(subject),
		sep:     os.PathSeparator,
	}
	m.memo = make([]int8, (len(m.pattern)+1)*(len(m.subject)+1))
	return m
}

func (m *matcher) match(pi, si int) bool {
	idx := pi*(len(m.subject)+1) + si
	switch m.memo[idx] {
	case yes:
		return true
	case no:
		return false
	}
	ok := m.step(pi, si)
	if ok {
		m.memo[idx] = yes
	} else {
		m.memo[idx] = no
	}
	return ok
}

func (m *matcher) step(pi, si int) bool {
	if pi == len(m.pattern) {
		return si == len(m.subject)
	}

	switch c := m.pattern[pi]; {
	case c == '*' && pi+1 < len(m.pattern) && m.pattern[pi+1] == '*':
		return m.doubleStar(pi+2, si)
	case c == '*':
		return m.star(pi+1, si)
	case c == '?':
		return si < len(m.subject) && m.match(pi+1, si+1)
	case c == '[':
		return m.class(pi, si)
	default:
		return si < len(m.subject) && m.subject[si] == c && m.match(pi+1, si+1)
	}
}

func (m *matcher) doubleStar(rest, si int) bool {
	if rest == len(m.pattern) {
		return true
	}
	for k := si; k <= len(m.subject); k++ {
		if m.match(rest, k) {
			return true
		}
	}
	return false
}

func (m *matcher) star(rest, si int) bool {
	if rest == len(m.pattern) {
		for _, r := range m.subject[si:] {
			if r == m.sep {
				return false
			}
		}
		return true
	}
	for k := si; k <= len(m.subject); k++ {
		if m.match(rest, k) {
			return true
		}
		if k < len(m.subject) && m.subject[k] == m.sep {
			break
		}
	}
	return false
}

func (m *matcher) class(pi, si int) bool {
	end := -1
	for j := pi + 1; j < len(m.pattern); j++ {
		if m.pattern[j] == ']' {
			end = j
			break
		}
	}
	if end < 0 || si >= len(m.subject) {
		return false
	}

	ch := m.subject[si]
	member := false
	for j := pi + 1; j < end; j++ {
		c := m.pattern[j]
		if c == '-' && j > pi+1 && j < end-1 && isAlnum(m.pattern[j-1]) && isAlnum(m.pattern[j+1]) {
			if m.pattern[j-1] <= ch && ch <= m.pattern[j+1] {
				member = true
			}
		} else if c == ch {
			member = true
		}
	}
	return member && m.match(end+1, si+1)
}

func isAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
