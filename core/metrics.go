package core

import "context"

// NopMetricsRecorder is the default recorder when no metrics backend is
// wired. Counter and histogram writes are dropped.
type NopMetricsRecorder struct{}

var _ MetricsRecorder = NopMetricsRecorder{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

func (NopMetricsRecorder) ObserveHistogram(context.Context, string, float64, map[string]string) {}

// cloneTags copies tag maps before they cross the recorder boundary so a
// recorder that retains the map cannot observe later mutations.
func cloneTags(tags map[string]string) map[string]string {
	copied := make(map[string]string, len(tags))
	for key, value := range tags {
		copied[key] = value
	}
	return copied
}
