package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NavitiaCallsRate returns a timeseries panel showing the Navitia API call
// rate.
func NavitiaCallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Navitia Calls Rate").
		Description("Navitia journey API calls per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`recenseur:navitia_calls:rate5m`, "calls/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NavitiaErrors returns a timeseries panel showing the Navitia error rate.
func NavitiaErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Navitia Errors").
		Description("Failed Navitia journey API calls per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`recenseur:navitia_errors:rate5m`, "errors/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CommuteFallbacks returns a stat panel showing how often the static
// commute table answered instead of Navitia in the past 24 hours.
func CommuteFallbacks() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Table Fallbacks (24h)").
		Description("Commute estimates served from the static table in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(recenseur_commute_fallbacks_total{job="recenseur"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
