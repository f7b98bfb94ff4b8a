package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITRE\tVILLE\tPRIX\tSURFACE\tSCORE\n")
	for i := range listings {
		l := &listings[i]
		score := "-"
		if l.ScoreReno != nil {
			score = fmt.Sprintf("%.2f", *l.ScoreReno)
		}
		tw.writef("%s\t%s\t%v\t%v\t%s\n",
			truncate(l.Titre, 40),
			l.Ville,
			l.Prix,
			l.SurfaceM2,
			score,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Titre:\t%s\n", l.Titre)
	tw.writef("URL:\t%s\n", l.URL)
	tw.writef("Source:\t%s\n", l.Source)
	tw.writef("Prix:\t%v\n", l.Prix)
	tw.writef("Surface:\t%v\n", l.SurfaceM2)
	tw.writef("Type:\t%s\n", l.Type)
	tw.writef("Ville:\t%s\n", l.Ville)
	tw.writef("CP:\t%s\n", l.CP)
	tw.writef("Date:\t%s\n", l.Date)
	if l.ScoreReno != nil {
		tw.writef("Score:\t%.2f\n", *l.ScoreReno)
	}
	if l.Key != "" {
		tw.writef("Key:\t%s\n", l.Key)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readListings loads a JSON array of listings from path, or stdin when
// path is "-".
func readListings(path string) ([]domain.Listing, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading listings: %w", err)
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("parsing listings: %w", err)
	}
	return listings, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
