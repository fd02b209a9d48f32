// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package cmd

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pulsecraft/irscope/pkg/nec"
)

// decodeMetrics holds the Prometheus metrics exported by long-running decode
// sessions
type decodeMetrics struct {
	FramesDecoded prometheus.Counter
	DecodeErrors  *prometheus.CounterVec
	SamplesRead   prometheus.Counter
}

// newDecodeMetrics creates and registers the decode metrics
func newDecodeMetrics() *decodeMetrics {
	return &decodeMetrics{
		FramesDecoded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "irscope_frames_decoded_total",
			Help: "Total number of frames decoded into valid NEC commands",
		}),
		DecodeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "irscope_decode_errors_total",
			Help: "Total number of frame decode failures by error kind",
		}, []string{"kind"}),
		SamplesRead: promauto.NewCounter(prometheus.CounterOpts{
			Name: "irscope_samples_read_total",
			Help: "Total number of receiver samples read from the connection",
		}),
	}
}

// observe records one finalized frame outcome
func (m *decodeMetrics) observe(msg *nec.Message, derr *nec.DecodeError) {
	if msg != nil {
		m.FramesDecoded.Inc()
	}
	if derr != nil {
		m.DecodeErrors.WithLabelValues(nec.FormatErrorKind(derr.Kind)).Inc()
	}
}

// serveMetrics exposes /metrics on addr in the background
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server error: %v", err)
		}
	}()
}
