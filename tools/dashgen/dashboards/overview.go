// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/Nathalie1962/recenseur-backend/tools/dashgen/panels"
)

// BuildOverview constructs the Recenseur Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Recenseur Overview").
		Uid("recenseur-overview").
		Tags([]string{"recenseur"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.UpStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.AuthFailures()))

	// Row 3: Navitia.
	b.WithRow(dashboard.NewRowBuilder("Navitia").
		WithPanel(panels.NavitiaCallsRate()).
		WithPanel(panels.NavitiaErrors()).
		WithPanel(panels.CommuteFallbacks()))

	// Row 4: Pipeline.
	b.WithRow(dashboard.NewRowBuilder("Pipeline").
		WithPanel(panels.DedupeRate()).
		WithPanel(panels.StoreAppendRate()).
		WithPanel(panels.StoreErrors()))

	// Row 5: Scoring.
	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.ScoreDistribution()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
