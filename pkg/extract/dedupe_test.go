package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

func TestDedupe_FirstSeenWins(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		{URL: "a?x=1", Titre: "T", Prix: 100, SurfaceM2: 50, Ville: "Paris", Source: "first"},
		{URL: "a?x=2", Titre: "T", Prix: 100, SurfaceM2: 50, Ville: "Paris", Source: "second"},
	}

	unique := Dedupe(listings)
	require.Len(t, unique, 1, "both URLs truncate to the same identity")
	assert.Equal(t, "first", unique[0].Source)
	assert.Equal(t, ListingKey(&listings[0]), unique[0].Key)
}

func TestDedupe_PreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		{URL: "a", Titre: "A"},
		{URL: "b", Titre: "B"},
		{URL: "a", Titre: "A"},
		{URL: "c", Titre: "C"},
		{URL: "b", Titre: "B"},
	}

	unique := Dedupe(listings)
	require.Len(t, unique, 3)
	assert.Equal(t, "A", unique[0].Titre)
	assert.Equal(t, "B", unique[1].Titre)
	assert.Equal(t, "C", unique[2].Titre)
}

func TestDedupe_TagsEveryRetainedListing(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		{URL: "a", Titre: "A"},
		{URL: "b", Titre: "B"},
	}

	unique := Dedupe(listings)
	require.Len(t, unique, 2)

	seen := make(map[string]bool)
	for _, l := range unique {
		assert.NotEmpty(t, l.Key)
		assert.False(t, seen[l.Key], "keys must be unique in output")
		seen[l.Key] = true
	}
}

func TestDedupe_AllEmptyIdentitiesCollide(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		{Texte: "premier"},
		{Texte: "deuxième"},
		{Texte: "troisième"},
	}

	unique := Dedupe(listings)
	require.Len(t, unique, 1)
	assert.Equal(t, "premier", unique[0].Texte)
}

func TestDedupe_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]domain.Listing{}))
}

func TestDedupe_OutputNeverLargerThanInput(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		{URL: "a"}, {URL: "b"}, {URL: "a"}, {URL: "c"}, {URL: "c"}, {URL: "d"},
	}
	unique := Dedupe(listings)
	assert.LessOrEqual(t, len(unique), len(listings))
}

func TestDedupe_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{{URL: "a", Titre: "A"}}
	_ = Dedupe(listings)
	assert.Empty(t, listings[0].Key, "input slice elements keep their original state")
}
