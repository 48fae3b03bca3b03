package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	tierExact = iota
	tierPrefix
	tierContains
	tierFuzzy
)

type match struct {
	index    int
	tier     int
	distance int
}

// Search ranks apps against query by title and id: exact matches first,
// then prefixes, substrings and finally fuzzy matches ordered by edit
// distance. An empty query returns every app in catalog order.
func (c *Catalog) Search(query string) []App {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return c.Apps()
	}
	lower := strings.ToLower(trimmed)
	best := make(map[int]match, len(c.apps))
	consider := func(m match) {
		prev, ok := best[m.index]
		if !ok || m.tier < prev.tier || (m.tier == prev.tier && m.distance < prev.distance) {
			best[m.index] = m
		}
	}

	titles := make([]string, len(c.apps))
	ids := make([]string, len(c.apps))
	for i, app := range c.apps {
		titles[i] = app.Title
		ids[i] = app.ID
		for _, field := range []string{strings.ToLower(app.Title), strings.ToLower(app.ID)} {
			switch {
			case field == lower:
				consider(match{index: i, tier: tierExact})
			case strings.HasPrefix(field, lower):
				consider(match{index: i, tier: tierPrefix, distance: len(field) - len(lower)})
			case strings.Contains(field, lower):
				consider(match{index: i, tier: tierContains, distance: len(field) - len(lower)})
			}
		}
	}
	for _, targets := range [][]string{titles, ids} {
		for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, targets) {
			consider(match{index: rank.OriginalIndex, tier: tierFuzzy, distance: rank.Distance})
		}
	}

	matches := make([]match, 0, len(best))
	for _, m := range best {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		return a.index < b.index
	})
	out := make([]App, len(matches))
	for i, m := range matches {
		out[i] = c.apps[m.index]
	}
	return out
}
