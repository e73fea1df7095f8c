package metrics

import (
	"priority-scheduler/internal/responses"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts simulations served by the API.
type Collector struct {
	passes     prometheus.Counter
	processes  prometheus.Counter
	turnaround prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "priority_scheduler",
			Name:      "scheduling_passes_total",
			Help:      "Number of completed scheduling passes.",
		}),
		processes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "priority_scheduler",
			Name:      "processes_scheduled_total",
			Help:      "Number of processes dispatched across all passes.",
		}),
		turnaround: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "priority_scheduler",
			Name:      "turnaround_time_units",
			Help:      "Per-process turnaround time in simulated time units.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	for _, m := range []prometheus.Collector{c.passes, c.processes, c.turnaround} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) Observe(response responses.ScheduleResponse) {
	c.passes.Inc()
	c.processes.Add(float64(len(response.Details)))
	for _, d := range response.Details {
		c.turnaround.Observe(float64(d.TurnAroundTime))
	}
}
