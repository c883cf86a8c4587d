package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter reports the number of stored prompts and collections.
type Counter interface {
	Counts() (prompts, collections int)
}

// ReassignedPromptsTotal counts prompts moved to Uncategorized when their collection is deleted.
var ReassignedPromptsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "collection_reassigned_prompts_total",
		Help:      "Total prompts moved to the Uncategorized collection on collection delete",
	},
)

func init() {
	prometheus.MustRegister(ReassignedPromptsTotal)
}

// RegisterStorage exposes storage record counts as gauges evaluated on scrape.
// Registering against a registry that already holds the gauges is a no-op.
func RegisterStorage(reg prometheus.Registerer, c Counter) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "storage",
			Name:      "prompts",
			Help:      "Number of prompts held in memory",
		}, func() float64 {
			p, _ := c.Counts()
			return float64(p)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "storage",
			Name:      "collections",
			Help:      "Number of collections held in memory",
		}, func() float64 {
			_, n := c.Counts()
			return float64(n)
		}),
	}

	for _, g := range gauges {
		if err := reg.Register(g); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register storage gauge: %w", err)
		}
	}
	return nil
}
