// Package query filters the cached grant table against UI-driven criteria
// and produces the visible subset, falling back to a relaxed recommendation
// set when a strict filter matches nothing.
package query

import (
	"strings"

	"github.com/daehantax/fund-match/internal/models"
)

// Criteria is one snapshot of the active dashboard filters. The zero value
// matches everything.
type Criteria struct {
	Category      string   // 전체 or one of models.BizCategories
	Region        string   // 전체, 전국 or one of models.Regions
	Query         string   // free-text search over title/department/agency
	Interests     []string // selected interest-tag labels
	Favorites     []string // favorite posting ids (client-persisted)
	FavoritesOnly bool
}

// Result is the visible set plus a flag telling the caller whether it is a
// literal match or a relaxed recommendation.
type Result struct {
	Grants      []models.GrantPosting `json:"grants"`
	Recommended bool                  `json:"recommended"`
}

// The ministry whose postings are treated as nationwide in the relaxed
// fallback match. Deliberately a single hard-coded name; widening the list
// needs product sign-off.
const nationwideDepartment = "중소벤처기업부"

// How many leading rows to show when even the relaxed match is empty.
const fallbackRowCount = 6

// Run evaluates the criteria against the full table. Stages compose by
// intersection: interest tags first, then either favorites-only (which
// short-circuits the rest) or category/region/text. Stateless and
// deterministic; re-run it on any criteria or table change.
func Run(grants []models.GrantPosting, c Criteria) Result {
	result := grants

	if len(c.Interests) > 0 {
		result = filterByInterests(result, c.Interests)
	}

	if c.FavoritesOnly {
		// Favorites view is exclusive of category/region/text filtering.
		return Result{Grants: filterByFavorites(result, c.Favorites)}
	}

	if c.Category != "" && c.Category != models.CategoryAll {
		result = keep(result, func(g models.GrantPosting) bool {
			return strings.Contains(g.Category, c.Category) || g.Category == c.Category
		})
	}
	if c.Region != "" && c.Region != models.RegionAll {
		result = keep(result, func(g models.GrantPosting) bool {
			return strings.Contains(g.Department, c.Region) ||
				strings.Contains(g.Title, c.Region) ||
				strings.Contains(g.Agency, c.Region) ||
				c.Region == models.RegionNationwide
		})
	}
	if c.Query != "" {
		result = keep(result, func(g models.GrantPosting) bool {
			return strings.Contains(g.Title, c.Query) ||
				strings.Contains(g.Department, c.Query) ||
				strings.Contains(g.Agency, c.Query)
		})
	}

	if len(result) == 0 && c.Query == "" && len(grants) > 0 {
		return Result{Grants: recommend(grants, c), Recommended: true}
	}

	return Result{Grants: result}
}

// recommend recomputes over the FULL table with relaxed rules: the selected
// category still applies, but region is widened to nationwide signals. If
// even that is empty, the first rows of the table are shown in source order.
func recommend(grants []models.GrantPosting, c Criteria) []models.GrantPosting {
	relaxed := keep(grants, func(g models.GrantPosting) bool {
		catMatch := c.Category == "" || c.Category == models.CategoryAll ||
			strings.Contains(g.Category, c.Category)
		regionMatch := c.Region == "" || c.Region == models.RegionAll ||
			strings.Contains(g.Department, models.RegionNationwide) ||
			strings.Contains(g.Department, nationwideDepartment) ||
			strings.Contains(g.Department, c.Region)
		return catMatch && regionMatch
	})
	if len(relaxed) > 0 {
		return relaxed
	}

	n := fallbackRowCount
	if n > len(grants) {
		n = len(grants)
	}
	return grants[:n]
}

func filterByInterests(grants []models.GrantPosting, interests []string) []models.GrantPosting {
	selected := make(map[string]bool, len(interests))
	for _, tag := range interests {
		selected[tag] = true
	}
	// Untagged postings are excluded once any interest filter is active.
	return keep(grants, func(g models.GrantPosting) bool {
		for _, tag := range g.Tags {
			if selected[tag] {
				return true
			}
		}
		return false
	})
}

func filterByFavorites(grants []models.GrantPosting, favorites []string) []models.GrantPosting {
	ids := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		ids[id] = true
	}
	return keep(grants, func(g models.GrantPosting) bool {
		return ids[g.ID]
	})
}

func keep(grants []models.GrantPosting, pred func(models.GrantPosting) bool) []models.GrantPosting {
	out := make([]models.GrantPosting, 0, len(grants))
	for _, g := range grants {
		if pred(g) {
			out = append(out, g)
		}
	}
	return out
}

// CategoryCounts tallies postings per filter category for the dashboard
// badges. 전체 is the table size; other buckets count raw-category substring
// matches, so a multi-label category contributes to several buckets.
func CategoryCounts(grants []models.GrantPosting) map[string]int {
	counts := map[string]int{models.CategoryAll: len(grants)}
	for _, cat := range models.BizCategories {
		if cat == models.CategoryAll {
			continue
		}
		n := 0
		for _, g := range grants {
			if strings.Contains(g.Category, cat) {
				n++
			}
		}
		counts[cat] = n
	}
	return counts
}

// TagCounts tallies postings per interest tag.
func TagCounts(grants []models.GrantPosting) map[string]int {
	counts := make(map[string]int)
	for _, g := range grants {
		for _, tag := range g.Tags {
			counts[tag]++
		}
	}
	return counts
}

// RegionCounts tallies postings per region for the dashboard badges. 전국 is
// the table size; other regions count department or title mentions.
func RegionCounts(grants []models.GrantPosting) map[string]int {
	counts := map[string]int{models.RegionNationwide: len(grants)}
	for _, region := range models.Regions {
		if region == models.RegionNationwide {
			continue
		}
		n := 0
		for _, g := range grants {
			if strings.Contains(g.Department, region) || strings.Contains(g.Title, region) {
				n++
			}
		}
		counts[region] = n
	}
	return counts
}
