package extract

import (
	"crypto/sha1" //nolint:gosec // identity hash, not a security boundary
	"encoding/hex"
	"fmt"
	"strings"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// keyDelimiter separates identity fields before hashing.
const keyDelimiter = "|"

// CanonicalKey derives the stable identity hash for a listing from its
// five identity fields. The URL is truncated at the first query-string
// delimiter and the title trimmed; price and surface are stringified
// as-supplied with no numeric normalization, so "100000" and 100000 hash
// identically but "100000.0" does not. The result is the hex-encoded
// SHA-1 digest of the delimited tuple.
func CanonicalKey(url, titre string, prix, surface any, ville string) string {
	url, _, _ = strings.Cut(url, "?")

	s := strings.Join([]string{
		url,
		strings.TrimSpace(titre),
		stringify(prix),
		stringify(surface),
		ville,
	}, keyDelimiter)

	sum := sha1.Sum([]byte(s)) //nolint:gosec // see above
	return hex.EncodeToString(sum[:])
}

// ListingKey computes the canonical key from a listing's identity fields.
func ListingKey(l *domain.Listing) string {
	return CanonicalKey(l.URL, l.Titre, l.Prix, l.SurfaceM2, l.Ville)
}

// stringify produces the single canonical textual form of a price or
// surface value. Nil becomes the empty string so absent fields hash
// consistently.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
