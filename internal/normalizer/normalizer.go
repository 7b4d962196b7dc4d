// Package normalizer converts raw question/answer/synonym text into the
// canonical search key used by the lexical index. The same function runs at
// write time and at query time; if the two ever disagree, lexical recall
// silently degrades.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// englishStopwords are high-frequency English function words dropped from the
// search key. Matched as whole tokens only.
var englishStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {}, "by": {},
	"for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {}, "it": {}, "of": {}, "on": {},
	"or": {}, "the": {}, "to": {}, "was": {}, "were": {}, "with": {},
}

// chineseStopwords are particles and polite fillers that carry no retrieval
// signal. Chinese text has no word boundaries, so these are removed as
// substrings wherever they occur. Entries are in the canonical (Traditional)
// script; removal runs after script conversion so one form covers both
// scripts.
var chineseStopwords = []string{
	"請問一下",
	"請問",
	"麻煩你",
	"麻煩您",
	"麻煩",
	"謝謝",
	"你好",
	"您好",
	"一下",
	"的",
	"嗎",
	"呢",
	"吧",
	"啊",
	"喔",
	"哦",
	"呀",
	"啦",
	"唷",
	"囉",
	"欸",
	"耶",
}

// Normalize converts arbitrary human-authored text into its canonical search
// key: full-width characters folded to half-width, letters lowercased,
// Simplified characters converted to Traditional, stopwords removed,
// punctuation treated as whitespace, and whitespace collapsed.
//
// Normalize never fails, maps empty input to the empty string, and is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = width.Fold.String(text)
	text = strings.ToLower(text)
	text = toTraditional(text)

	for _, stop := range chineseStopwords {
		text = strings.ReplaceAll(text, stop, " ")
	}

	text = stripNoise(text)

	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if _, stop := englishStopwords[f]; stop {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// toTraditional applies the context-free per-rune Simplified-to-Traditional
// mapping. Traditional input passes through unchanged, which is what makes
// Normalize idempotent.
func toTraditional(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if t, ok := simplifiedToTraditional[r]; ok {
			b.WriteRune(t)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripNoise replaces punctuation and symbol runes with spaces so they never
// leak into the search key.
func stripNoise(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, text)
}
