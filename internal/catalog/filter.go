package catalog

import (
	"strings"

	"github.com/opphub/opphub/internal/model"
)

// Criteria is the ephemeral filter state of one browsing interaction. Empty
// fields are inactive; Category additionally treats "all" as inactive.
type Criteria struct {
	Search     string
	Category   string
	Source     string
	Difficulty string
	Location   string
}

// Filter returns the opportunities matching every active criterion, in the
// order they appear in catalog. An empty result is valid output.
func Filter(catalog []model.Opportunity, c Criteria) []model.Opportunity {
	filtered := make([]model.Opportunity, 0, len(catalog))
	for _, opp := range catalog {
		if !matchesSearch(opp, c.Search) {
			continue
		}
		if c.Category != "" && c.Category != "all" && opp.Category != c.Category {
			continue
		}
		if c.Source != "" && opp.Source != c.Source {
			continue
		}
		if c.Difficulty != "" && opp.Difficulty != c.Difficulty {
			continue
		}
		if c.Location != "" && opp.Location != c.Location {
			continue
		}
		filtered = append(filtered, opp)
	}
	return filtered
}

// matchesSearch is a case-insensitive substring match over title, description
// and tags. An empty query matches everything.
func matchesSearch(opp model.Opportunity, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(opp.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(opp.Description), q) {
		return true
	}
	for _, tag := range opp.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// CountsByCategory tallies the catalog per category. Every known category is
// present even when zero, and "all" always equals the catalog length.
func CountsByCategory(catalog []model.Opportunity) map[string]int {
	counts := map[string]int{"all": len(catalog)}
	for _, category := range model.Categories {
		counts[category] = 0
	}
	for _, opp := range catalog {
		counts[opp.Category]++
	}
	return counts
}
