package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

func TestFeatures_FullRecord(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"titre":       "Maison de bourg",
		"url":         "https://ex.fr/a/1",
		"source":      "leboncoin",
		"prix":        float64(150000),
		"surface_m2":  float64(90),
		"type":        "appartement",
		"ville":       "Dreux",
		"code_postal": "28100",
		"date_pub":    "2026-08-12",
		"texte":       "à rénover entièrement",
		"images":      []any{"img1.jpg", "img2.jpg"},
	}

	l := Features(raw)
	assert.Equal(t, "Maison de bourg", l.Titre)
	assert.Equal(t, "https://ex.fr/a/1", l.URL)
	assert.Equal(t, "leboncoin", l.Source)
	assert.Equal(t, float64(150000), l.Prix)
	assert.Equal(t, float64(90), l.SurfaceM2)
	assert.Equal(t, "appartement", l.Type)
	assert.Equal(t, "Dreux", l.Ville)
	assert.Equal(t, "28100", l.CP)
	assert.Equal(t, "2026-08-12", l.Date)
	assert.Equal(t, "à rénover entièrement", l.Texte)
	assert.Equal(t, []string{"img1.jpg", "img2.jpg"}, l.Images)
}

func TestFeatures_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "empty record", raw: map[string]any{}},
		{name: "nil values", raw: map[string]any{"titre": nil, "type": nil, "images": nil}},
		{name: "type blank", raw: map[string]any{"type": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := Features(tt.raw)
			assert.Equal(t, domain.PropertyTypeDefault, l.Type)
			assert.Empty(t, l.Titre)
			assert.Nil(t, l.Prix)
			assert.NotNil(t, l.Images)
			assert.Empty(t, l.Images)
		})
	}
}

func TestFeatures_FieldRenames(t *testing.T) {
	t.Parallel()

	l := Features(map[string]any{
		"code_postal": "78120",
		"date_pub":    "2026-07-01",
	})
	assert.Equal(t, "78120", l.CP)
	assert.Equal(t, "2026-07-01", l.Date)
}

func TestFeatures_MistypedFieldsDegrade(t *testing.T) {
	t.Parallel()

	// A non-string title or non-list images must not panic; they degrade
	// to zero values like absent fields.
	l := Features(map[string]any{
		"titre":  42,
		"images": "not-a-list",
	})
	assert.Empty(t, l.Titre)
	assert.Empty(t, l.Images)
}
