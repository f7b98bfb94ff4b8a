// Package extract normalizes raw listing records into the canonical
// Listing shape and derives the identity key used for deduplication.
package extract

import (
	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// Features projects an arbitrary raw record onto the canonical Listing
// shape. Unknown or missing raw fields become zero values, the property
// type defaults to "maison", and the image list is never nil. This is a
// pure projection with no validation.
func Features(raw map[string]any) domain.Listing {
	l := domain.Listing{
		Titre:     rawString(raw, "titre"),
		URL:       rawString(raw, "url"),
		Source:    rawString(raw, "source"),
		Prix:      raw["prix"],
		SurfaceM2: raw["surface_m2"],
		Type:      rawString(raw, "type"),
		Ville:     rawString(raw, "ville"),
		CP:        rawString(raw, "code_postal"),
		Date:      rawString(raw, "date_pub"),
		Texte:     rawString(raw, "texte"),
		Images:    rawStrings(raw, "images"),
	}

	if l.Type == "" {
		l.Type = domain.PropertyTypeDefault
	}

	return l
}

func rawString(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

func rawStrings(raw map[string]any, key string) []string {
	v, ok := raw[key]
	if !ok || v == nil {
		return []string{}
	}

	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
