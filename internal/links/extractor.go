// Package links extracts YouTube video references from text and
// canonicalizes them so the same video never appears twice in a prompt.
package links

import (
	"regexp"
	"sort"
)

var (
	watchPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.|m\.)?youtube\.com/watch\?[^\s<>"]*?\bv=([A-Za-z0-9_-]{4,})`)
	shortPattern = regexp.MustCompile(`(?i)(?:https?://)?youtu\.be/([A-Za-z0-9_-]{4,})`)
)

// Extract returns one canonical watch URL per distinct video id found in text,
// in first-seen order. Both the watch?v= query form and the youtu.be short
// form map to the same canonical entry. Malformed input yields an empty slice.
func Extract(text string) []string {
	type hit struct {
		offset int
		id     string
	}
	hits := []hit{}
	for _, pattern := range []*regexp.Regexp{watchPattern, shortPattern} {
		for _, match := range pattern.FindAllStringSubmatchIndex(text, -1) {
			hits = append(hits, hit{offset: match[0], id: text[match[2]:match[3]]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })

	seen := map[string]struct{}{}
	urls := []string{}
	for _, h := range hits {
		if _, exists := seen[h.id]; exists {
			continue
		}
		seen[h.id] = struct{}{}
		urls = append(urls, Canonical(h.id))
	}
	return urls
}

// Canonical builds the canonical watch URL for a video id.
func Canonical(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
