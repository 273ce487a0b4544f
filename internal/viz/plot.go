package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/horizon/internal/shoot"
)

const chartWidth = 70

// TrajectoryChart renders the horizon curve h(θ) as a terminal graph.
func TrajectoryChart(radii []float64, height int) string {
	graph := asciigraph.Plot(radii,
		asciigraph.Height(height),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("h(theta), theta from 0 to pi/2"),
	)
	return graphStyle.Render(graph)
}

// SlopeChart renders dh/dθ over the grid; useful for eyeballing how close a
// trial curve is to closing at the equator.
func SlopeChart(slopes []float64, height int) string {
	graph := asciigraph.Plot(slopes,
		asciigraph.Height(height),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("dh/dtheta, theta from 0 to pi/2"),
	)
	return graphStyle.Render(graph)
}

// ResidualChart renders a bracket scan R(h0). Failed samples are dropped
// from the curve and reported below it.
func ResidualChart(samples []shoot.Sample, height int) string {
	values := make([]float64, 0, len(samples))
	failed := 0
	for _, s := range samples {
		if s.Err != nil {
			failed++
			continue
		}
		values = append(values, s.Residual)
	}

	var b strings.Builder
	if len(values) >= 2 {
		graph := asciigraph.Plot(values,
			asciigraph.Height(height),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(fmt.Sprintf("R(h0), h0 from %g to %g", samples[0].H0, samples[len(samples)-1].H0)),
		)
		b.WriteString(graphStyle.Render(graph))
	} else {
		b.WriteString(errorStyle.Render("too few valid samples to plot"))
	}
	if failed > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d sample(s) failed to integrate", failed)))
	}
	return b.String()
}

// SolveSummary renders the converged result as a labelled block.
func SolveSummary(sources []float64, scheme string, gridPoints int, res shoot.Result) string {
	rows := []struct {
		label string
		value string
	}{
		{"sources", fmt.Sprintf("%v", sources)},
		{"scheme", scheme},
		{"grid points", fmt.Sprintf("%d", gridPoints)},
		{"h0*", fmt.Sprintf("%.12f", res.Root)},
		{"residual", fmt.Sprintf("%.3e", res.Residual)},
		{"iterations", fmt.Sprintf("%d", res.Iterations)},
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("apparent horizon"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}
	return b.String()
}
