package promptlab

import (
	"context"
	"time"
)

// Health reports store availability and record counts.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)
	c.obs.observe("health", start, nil)

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:      string(report.Status),
		Checks:      checks,
		Prompts:     report.Prompts,
		Collections: report.Collections,
	}
}
