// Package domain defines the core business types for the recenseur backend.
package domain

// PropertyTypeDefault is the property type assumed when a raw listing
// carries none.
const PropertyTypeDefault = "maison"

// Listing represents a real-estate listing in its canonical shape.
// JSON field names follow the upstream French API contract. No field is
// required; absent fields stay at their zero value.
//
// Prix and SurfaceM2 are deliberately untyped: sources disagree on whether
// they send numbers or strings, and the canonical key must preserve the
// caller's representation literally.
type Listing struct {
	Titre     string   `json:"titre,omitempty"`
	URL       string   `json:"url,omitempty"`
	Source    string   `json:"source,omitempty"`
	Prix      any      `json:"prix,omitempty"`
	SurfaceM2 any      `json:"surface_m2,omitempty"`
	Type      string   `json:"type,omitempty"`
	Ville     string   `json:"ville,omitempty"`
	CP        string   `json:"cp,omitempty"`
	Date      string   `json:"date,omitempty"`
	Texte     string   `json:"texte,omitempty"`
	Images    []string `json:"images" required:"false"`

	// Key is the canonical identity hash, attached during deduplication.
	Key string `json:"key,omitempty"`

	// ScoreReno is the renovation-likelihood score, when computed.
	ScoreReno *float64 `json:"score_reno,omitempty"`
}

// ScoreResult holds the outcome of scoring a listing description.
// MatchedTerms preserves rule-definition order, not input-position order.
type ScoreResult struct {
	ScoreReno    float64  `json:"score_reno"`
	MatchedTerms []string `json:"matched_terms"`
}

// CommuteEstimate holds a one-way commute duration estimate.
// MinutesTrain is nil when neither the journey planner nor the fallback
// table knows the origin.
type CommuteEstimate struct {
	MinutesTrain   *int   `json:"minutes_train"`
	GareDepart     string `json:"gare_depart"`
	GareParisienne string `json:"gare_parisienne"`
}
