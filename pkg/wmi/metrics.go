/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "winsnap_query_duration_seconds",
			Help:    "Time taken to execute and decode one class query",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"class"},
	)

	queryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winsnap_query_total",
			Help: "Total number of class query attempts",
		},
		[]string{"class", "status"}, // success or error
	)

	recordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winsnap_records_skipped_total",
			Help: "Records dropped under the skip-invalid decode policy",
		},
		[]string{"class"},
	)

	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winsnap_refresh_total",
			Help: "Total number of snapshot refresh attempts",
		},
		[]string{"class", "status"}, // success or error
	)
)
