package metrics_reporter

import (
	"github.com/cloudfoundry/dropsonde/metrics"
)

//go:generate counterfeiter -o fakes/fake_metrics_emitter.go . MetricsEmitter

type MetricsEmitter interface {
	Emit(*MetricsReport)
}

type metricsEmitter struct{}

func NewMetricsEmitter() MetricsEmitter {
	return &metricsEmitter{}
}

func (e *metricsEmitter) Emit(report *MetricsReport) {
	for name, count := range report.ClientCounts {
		metrics.SendValue("clients."+name, float64(count), "Clients")
	}
	metrics.SendValue("clients.total", float64(report.TotalClients), "Clients")
}
