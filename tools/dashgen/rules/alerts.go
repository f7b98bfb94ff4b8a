package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// recenseur operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "recenseur-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "recenseur-alerts",
					Rules: []Rule{
						{
							Alert: "RecenseurDown",
							Expr:  `absent(up{job="recenseur"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Recenseur is down",
								"description": "The recenseur job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "RecenseurHighErrorRate",
							Expr:  `recenseur:http_errors:rate5m / recenseur:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on recenseur",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "RecenseurStoreErrors",
							Expr:  `recenseur:store_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Store write errors detected",
								"description": "The JSONL store has been failing writes for more than 5 minutes.",
							},
						},
						{
							Alert: "RecenseurNavitiaErrors",
							Expr:  `recenseur:navitia_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Navitia error rate is elevated",
								"description": "Navitia journey calls are failing at more than 0.1/s; commute estimates are falling back to the static table.",
							},
						},
						{
							Alert: "RecenseurAuthFailureSpike",
							Expr:  `sum(rate(recenseur_auth_failures_total[5m])) * 60 > 10`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Spike in rejected API requests",
								"description": "More than 10 requests per minute are failing the bearer-token check.",
							},
						},
					},
				},
			},
		},
	}
}
