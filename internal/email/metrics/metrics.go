package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the email relay.
type Metrics struct {
	Uploads      prometheus.Counter
	UploadBytes  prometheus.Histogram
	Sends        *prometheus.CounterVec
	FilesRemoved *prometheus.CounterVec
}

// New creates the relay metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Uploads: factory.NewCounter(prometheus.CounterOpts{
			Name: "normalro_email_uploads_total",
			Help: "Temporary attachments uploaded",
		}),

		UploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "normalro_email_upload_bytes",
			Help:    "Size of uploaded attachments in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),

		Sends: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "normalro_email_sends_total",
			Help: "Send attempts by provider and outcome",
		}, []string{"provider", "outcome"}), // outcome: "sent", "failed"

		FilesRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "normalro_email_temp_files_removed_total",
			Help: "Temporary attachments removed, by reason",
		}, []string{"reason"}), // reason: "deleted", "expired"
	}
}

// ObserveUpload records an accepted upload.
func (m *Metrics) ObserveUpload(size int64) {
	if m == nil {
		return
	}
	m.Uploads.Inc()
	m.UploadBytes.Observe(float64(size))
}

// IncrementSend records a send attempt.
func (m *Metrics) IncrementSend(provider string, sent bool) {
	if m == nil {
		return
	}
	outcome := "sent"
	if !sent {
		outcome = "failed"
	}
	m.Sends.WithLabelValues(provider, outcome).Inc()
}

// AddRemoved records removed temporary files.
func (m *Metrics) AddRemoved(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.FilesRemoved.WithLabelValues(reason).Add(float64(n))
}
