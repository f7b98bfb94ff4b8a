package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "recenseur-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "recenseur-recording",
					Rules: []Rule{
						{
							Record: "recenseur:http_requests:rate5m",
							Expr:   `sum(rate(recenseur_http_requests_total[5m]))`,
						},
						{
							Record: "recenseur:http_errors:rate5m",
							Expr:   `sum(rate(recenseur_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "recenseur:navitia_calls:rate5m",
							Expr:   `rate(recenseur_navitia_calls_total[5m])`,
						},
						{
							Record: "recenseur:navitia_errors:rate5m",
							Expr:   `rate(recenseur_navitia_errors_total[5m])`,
						},
						{
							Record: "recenseur:store_appended:rate5m",
							Expr:   `rate(recenseur_store_appended_total[5m])`,
						},
						{
							Record: "recenseur:store_errors:rate5m",
							Expr:   `rate(recenseur_store_errors_total[5m])`,
						},
					},
				},
			},
		},
	}
}
