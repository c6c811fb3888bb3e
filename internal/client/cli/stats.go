package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	dto "github.com/prometheus/client_model/go"
)

// Stats prints the upstream request counters and latency summaries gathered
// since start.
func (a *App) Stats(ctx context.Context) error {
	mfs, err := a.registry.Gather()
	if err != nil {
		a.log.Warn(ctx, "gathering metrics failed", "error", err)
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Metric\tLabels\tValue")

	rows := 0
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			value, ok := metricValue(mf.GetType(), m)
			if !ok {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", mf.GetName(), labelString(m.GetLabel()), value)
			rows++
		}
	}
	tw.Flush()

	if rows == 0 {
		a.println("No requests yet")
	}
	return nil
}

func metricValue(t dto.MetricType, m *dto.Metric) (string, bool) {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%.0f", m.GetCounter().GetValue()), true
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		n := h.GetSampleCount()
		if n == 0 {
			return "", false
		}
		avg := h.GetSampleSum() / float64(n)
		return fmt.Sprintf("%d calls, avg %.0fms", n, avg*1000), true
	default:
		return "", false
	}
}

func labelString(labels []*dto.LabelPair) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.GetName()+"="+l.GetValue())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
