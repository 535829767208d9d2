package bench

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// WriteChart renders the per-iteration stage durations of report as an HTML
// line chart, in microseconds.
func (h *Harness) WriteChart(report *Report, w io.Writer) error {
	x := make([]int, len(report.Samples))
	for i := range x {
		x[i] = i
	}

	title := fmt.Sprintf("%s transform timings", report.Params)
	subtitle := fmt.Sprintf("n=%d, ntt mean=%s, invntt mean=%s, mismatches=%d",
		report.Iterations, report.Mean(StageNTT), report.Mean(StageInvNTT), report.Mismatches)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "µs"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
	)
	line.SetXAxis(x)
	for _, st := range Stages() {
		line.AddSeries(st.String(), h.lineItems(report, st))
	}

	if err := line.Render(w); err != nil {
		return errors.Wrap(err, "cannot render chart")
	}
	return nil
}

func (h *Harness) lineItems(report *Report, stage Stage) []opts.LineData {
	out := make([]opts.LineData, len(report.Samples))
	for i, s := range report.Samples {
		us := float64(h.duration(s[stage]).Nanoseconds()) / 1e3
		out[i] = opts.LineData{Value: us}
	}
	return out
}
