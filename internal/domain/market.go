package domain

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// AllCategories is the marketplace filter value that matches every offer.
const AllCategories = ""

// FilterOffers keeps offers in the given category (AllCategories keeps all)
// that match query, ranked by match quality. Ties keep seed order.
func FilterOffers(offers []Offer, category, query string) []Offer {
	q := strings.ToLower(strings.TrimSpace(query))
	type scored struct {
		offer Offer
		score int
	}
	hits := make([]scored, 0, len(offers))
	for _, o := range offers {
		if category != AllCategories && o.Category != category {
			continue
		}
		if q == "" {
			hits = append(hits, scored{offer: o})
			continue
		}
		score, ok := matchOffer(o, q)
		if !ok {
			continue
		}
		hits = append(hits, scored{offer: o, score: score})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })
	out := make([]Offer, len(hits))
	for i, h := range hits {
		out[i] = h.offer
	}
	return out
}

// matchOffer scores 0 for a title substring, 1 for a substring elsewhere and
// 2+distance for a fuzzy word match within tolerance.
func matchOffer(o Offer, q string) (int, bool) {
	title := strings.ToLower(o.Title)
	if strings.Contains(title, q) {
		return 0, true
	}
	rest := strings.ToLower(o.Category + " " + o.ProfessionalName + " " + o.Description)
	if strings.Contains(rest, q) {
		return 1, true
	}
	best := -1
	for _, word := range strings.Fields(title + " " + strings.ToLower(o.Category)) {
		d := levenshtein.ComputeDistance(q, word)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 || best > fuzzyTolerance(q) {
		return 0, false
	}
	return 2 + best, true
}

func fuzzyTolerance(q string) int {
	n := len([]rune(q))
	switch {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	default:
		return 2
	}
}

// OfferCategories returns the distinct categories of offers in seed order.
func OfferCategories(offers []Offer) []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range offers {
		if o.Category == "" || seen[o.Category] {
			continue
		}
		seen[o.Category] = true
		out = append(out, o.Category)
	}
	return out
}

// PlaceholderImage is the stand-in URL used instead of a real upload.
func PlaceholderImage(category string) string {
	if strings.TrimSpace(category) == "" {
		category = "construction"
	}
	return "https://source.unsplash.com/800x600/?" + category + ",work"
}
