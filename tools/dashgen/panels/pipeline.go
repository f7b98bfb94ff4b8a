package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DedupeRate returns a timeseries panel comparing listings seen and
// listings kept by deduplication.
func DedupeRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dedupe Throughput").
		Description("Listings entering and surviving deduplication per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(recenseur_dedupe_listings_total{job="recenseur"}[5m])) * 60`,
			"seen/min", "A",
		)).
		WithTarget(PromQuery(
			`sum(rate(recenseur_dedupe_unique_total{job="recenseur"}[5m])) * 60`,
			"unique/min", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StoreAppendRate returns a timeseries panel showing listings appended to
// the JSONL store per minute.
func StoreAppendRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Store Appends / min").
		Description("Listings appended to the JSONL store per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`recenseur:store_appended:rate5m * 60`, "appends/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StoreErrors returns a timeseries panel showing store write errors per
// minute.
func StoreErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Store Errors / min").
		Description("Failed store writes per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`recenseur:store_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
