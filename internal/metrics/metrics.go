/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	prefix = "manifest_decoration_runtime"
)

var (
	DecoratorsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_decorators_applied_total",
			Help: "Decorators applied per group and tier",
		},
		[]string{"group", "tier"},
	)
	DecoratorsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_decorators_skipped_total",
			Help: "Decorators skipped per group, tier and reason (unresolved target or disabled condition)",
		},
		[]string{"group", "tier", "reason"},
	)
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_generations_total",
			Help: "Manifest generations per generator and outcome",
		},
		[]string{"generator", "outcome"},
	)
	Documents = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_documents",
			Help: "Number of documents per group after the last finalization",
		},
		[]string{"group"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		DecoratorsApplied,
		DecoratorsSkipped,
		Generations,
		Documents,
	)
}
