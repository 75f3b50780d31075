package rank

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minKeywordLen = 3

// Paragraphs splits corpus text on blank-line boundaries, trimming whitespace
// and dropping empty results.
func Paragraphs(text string) []string {
	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		paragraphs = append(paragraphs, block)
	}
	return paragraphs
}

// Keywords extracts the deduplicated lowercase tokens of a question, keeping
// only tokens longer than two characters. Surrounding punctuation is stripped
// so a question like "what is your pricing?" still matches prose containing
// the bare word.
func Keywords(question string) []string {
	seen := map[string]struct{}{}
	keywords := []string{}
	for _, token := range strings.Fields(strings.ToLower(question)) {
		token = strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if utf8.RuneCountInString(token) < minKeywordLen {
			continue
		}
		if _, exists := seen[token]; exists {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}
	return keywords
}

// Rank scores corpus paragraphs against the question's keyword set and returns
// up to max of them, best first. Scoring is deliberately crude: a paragraph
// scores one point per distinct keyword it contains as a case-insensitive
// substring. Ties keep corpus order. When no keyword matches anywhere (or the
// question yields no keywords at all), the first max paragraphs are returned
// instead, so the context is empty only when the corpus itself is.
func Rank(corpusText, question string, max int) []string {
	if max < 1 {
		return nil
	}
	paragraphs := Paragraphs(corpusText)
	if len(paragraphs) == 0 {
		return nil
	}
	keywords := Keywords(question)
	if len(keywords) == 0 {
		return head(paragraphs, max)
	}

	type scored struct {
		text  string
		score int
	}
	matches := []scored{}
	for _, paragraph := range paragraphs {
		lower := strings.ToLower(paragraph)
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{text: paragraph, score: score})
		}
	}
	if len(matches) == 0 {
		return head(paragraphs, max)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > max {
		matches = matches[:max]
	}
	selected := make([]string, 0, len(matches))
	for _, match := range matches {
		selected = append(selected, match.text)
	}
	return selected
}

func head(paragraphs []string, max int) []string {
	if len(paragraphs) > max {
		paragraphs = paragraphs[:max]
	}
	out := make([]string, len(paragraphs))
	copy(out, paragraphs)
	return out
}
