package extract

import (
	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// Dedupe returns the subsequence of listings with unique canonical keys,
// first-seen-wins, in first-seen order. Each retained listing is tagged
// with its computed key. Listings whose identity fields are all empty
// collide with each other; that is defined behavior, not an error.
func Dedupe(listings []domain.Listing) []domain.Listing {
	seen := make(map[string]struct{}, len(listings))
	unique := make([]domain.Listing, 0, len(listings))

	for _, l := range listings {
		key := ListingKey(&l)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		l.Key = key
		unique = append(unique, l)
	}

	return unique
}
