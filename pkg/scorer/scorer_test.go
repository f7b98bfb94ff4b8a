package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_RuleExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		wantScore   float64
		wantMatched []string
	}{
		{
			name:      "positive rules sum and clamp at 1.0",
			text:      "Maison à rénover avec travaux importants",
			wantScore: 1.0,
			wantMatched: []string{
				`à rénover`,
				`travaux (?:à prévoir|importants)`,
			},
		},
		{
			name:      "negative rules clamp at 0.0",
			text:      "Bien refait à neuf, aucun travaux",
			wantScore: 0.0,
			wantMatched: []string{
				`refait à neuf`,
				`aucun(?:s)? travaux?`,
			},
		},
		{
			name:      "sum above 1.0 is clamped",
			text:      "à rénover, à réhabiliter, plateau brut",
			wantScore: 1.0,
			wantMatched: []string{
				`à rénover`,
				`à réhabiliter`,
				`plateau (?:brut|à aménager)`,
			},
		},
		{
			name:        "light refresh",
			text:        "appartement à rafraîchir",
			wantScore:   0.2,
			wantMatched: []string{`à rafraîchir`},
		},
		{
			name:        "no rules match",
			text:        "belle maison de campagne",
			wantScore:   0.0,
			wantMatched: nil,
		},
		{
			name:        "empty text",
			text:        "",
			wantScore:   0.0,
			wantMatched: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Score(tt.text)
			assert.InDelta(t, tt.wantScore, got.Score, 0.0001)
			assert.Equal(t, tt.wantMatched, got.Matched)
		})
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Score("MAISON À RÉNOVER")
	assert.InDelta(t, 0.6, got.Score, 0.0001)
	assert.Equal(t, []string{`à rénover`}, got.Matched)
}

func TestScore_WordBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantMatch bool
	}{
		{name: "accented word at start of text", text: "à rénover entièrement", wantMatch: true},
		{name: "accented word at end of text", text: "grange à rénover", wantMatch: true},
		{name: "surrounded by punctuation", text: "(à rénover)", wantMatch: true},
		{name: "embedded in a longer word", text: "préàrénover", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Score(tt.text)
			if tt.wantMatch {
				assert.Contains(t, got.Matched, `à rénover`)
			} else {
				assert.Empty(t, got.Matched)
			}
		})
	}
}

func TestScore_FeminineAndPluralNegatives(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"maison rénovée avec goût",
		"appartements rénovés",
		"aucuns travaux à prévoir... enfin presque",
	} {
		got := Score(text)
		assert.Zero(t, got.Score, "negative-only text should clamp to 0: %q", text)
		assert.NotEmpty(t, got.Matched)
	}
}

func TestScore_MatchedOrderIsRuleOrder(t *testing.T) {
	t.Parallel()

	// Negative term appears first in the text but must be reported after
	// the positive rules.
	got := Score("refait à neuf sauf le grenier, plateau à aménager")
	assert.Equal(t, []string{
		`plateau (?:brut|à aménager)`,
		`refait à neuf`,
	}, got.Matched)
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()

	text := "Maison à rénover, travaux à prévoir, mais toiture rénovée"
	first := Score(text)
	second := Score(text)
	assert.Equal(t, first, second)
}

func TestScore_AlwaysBounded(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"à rénover à réhabiliter plateau brut travaux importants à rafraîchir",
		"rénové refait à neuf aucun travaux",
		"texte sans rapport",
	}

	for _, text := range texts {
		got := Score(text)
		assert.GreaterOrEqual(t, got.Score, 0.0)
		assert.LessOrEqual(t, got.Score, 1.0)
	}
}
