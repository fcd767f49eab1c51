// Package moderation implements the per-tier content policies applied to
// every outgoing message, built on an Aho-Corasick automaton so one pass
// over the text checks the whole word list.
package moderation

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"

	"petspace/errors"
)

// WordMatcher finds banned words matched as whole words only: a hit is
// discarded when the character before or after it is alphanumeric, so a
// short banned word embedded in a longer innocuous one never matches.
type WordMatcher struct {
	matcher *goahocorasick.Machine
}

func NewWordMatcher(words []string) (*WordMatcher, error) {
	m, err := buildMachine(words)
	if err != nil {
		return nil, err
	}
	return &WordMatcher{matcher: m}, nil
}

// FirstWord returns the first banned word found in the message, matching
// case-insensitively on word boundaries.
func (w *WordMatcher) FirstWord(message string) (string, bool) {
	runes := []rune(strings.ToLower(message))
	for _, span := range w.matcher.MultiPatternSearch(runes, false) {
		start := span.Pos
		end := start + len(span.Word)
		if start > 0 && isWordRune(runes[start-1]) {
			continue
		}
		if end < len(runes) && isWordRune(runes[end]) {
			continue
		}
		return string(span.Word), true
	}
	return "", false
}

// SubstringMatcher finds fragments anywhere in the message, unanchored and
// case-insensitive. It targets command fragments, not words, so boundary
// checks would be wrong here.
type SubstringMatcher struct {
	matcher *goahocorasick.Machine
}

func NewSubstringMatcher(fragments []string) (*SubstringMatcher, error) {
	m, err := buildMachine(fragments)
	if err != nil {
		return nil, err
	}
	return &SubstringMatcher{matcher: m}, nil
}

// FirstFragment returns the first fragment found in the message.
func (s *SubstringMatcher) FirstFragment(message string) (string, bool) {
	runes := []rune(strings.ToLower(message))
	spans := s.matcher.MultiPatternSearch(runes, true)
	if len(spans) == 0 {
		return "", false
	}
	return string(spans[0].Word), true
}

func buildMachine(patterns []string) (*goahocorasick.Machine, error) {
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWordList
	}
	lowered := make([][]rune, len(patterns))
	for i, p := range patterns {
		lowered[i] = []rune(strings.ToLower(p))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(lowered); err != nil {
		return nil, err
	}
	return m, nil
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
