package metrics_reporter

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/terraproxy/dimension-router/models"
)

type MetricsReport struct {
	TotalClients uint64
	ClientCounts map[string]uint64
}

// MetricsReporter periodically snapshots the server details registry and
// hands the per-destination client counts to the emitter.
type MetricsReporter struct {
	clock        clock.Clock
	details      *models.ServerDetailsRegistry
	emitter      MetricsEmitter
	emitInterval time.Duration
}

func NewMetricsReporter(clock clock.Clock, details *models.ServerDetailsRegistry, emitter MetricsEmitter, interval time.Duration) *MetricsReporter {
	return &MetricsReporter{
		clock:        clock,
		details:      details,
		emitter:      emitter,
		emitInterval: interval,
	}
}

func (r *MetricsReporter) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := r.clock.NewTicker(r.emitInterval)
	close(ready)
	for {
		select {
		case <-ticker.C():
			r.emitStats()
		case <-signals:
			ticker.Stop()
			return nil
		}
	}
}

func (r *MetricsReporter) emitStats() {
	report := MetricsReport{
		ClientCounts: make(map[string]uint64),
	}
	for name, details := range r.details.Snapshot() {
		count := uint64(details.ClientCount)
		report.ClientCounts[name] = count
		report.TotalClients += count
	}
	r.emitter.Emit(&report)
}
