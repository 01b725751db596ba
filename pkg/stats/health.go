package stats

type Health string

const (
	HealthHealthy  Health = "healthy"
	HealthWarning  Health = "warning"
	HealthCritical Health = "critical"
)

// ClassifyHealth buckets a utilization percentage against the configured
// thresholds. Comparisons are strict, so a utilization exactly at a threshold
// stays in the lower tier.
func ClassifyHealth(utilization float64, warningThreshold int, criticalThreshold int) Health {
	if utilization > float64(criticalThreshold) {
		return HealthCritical
	}
	if utilization > float64(warningThreshold) {
		return HealthWarning
	}
	return HealthHealthy
}
