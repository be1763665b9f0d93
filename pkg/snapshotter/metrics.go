/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "winsnap_collection_duration_seconds",
			Help:    "Time taken to capture a complete system snapshot",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	snapshotCollectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winsnap_collection_total",
			Help: "Total number of snapshot capture attempts",
		},
		[]string{"status"}, // success or error
	)

	snapshotSectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "winsnap_section_duration_seconds",
			Help:    "Time taken by individual state sections",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"section"},
	)

	snapshotSectionCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "winsnap_sections",
			Help: "Number of sections in the last captured snapshot",
		},
	)
)
