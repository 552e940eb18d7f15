package report

import (
	"fmt"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

func renderToFile(path string, render func(w *os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return render(file)
}

func renderCategoryChart(counts []CategoryCount, path string) error {
	bars := make([]chart.Value, 0, len(counts))
	maxCount := 0
	for _, c := range counts {
		bars = append(bars, chart.Value{Value: float64(c.Count), Label: c.Category})
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	graph := chart.BarChart{
		Title:    "Tasks per Category",
		Width:    600,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
		// equal bar heights collapse the implicit y-range to zero, which
		// the renderer rejects; anchor the axis at zero instead
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
	}
	return renderToFile(path, func(w *os.File) error {
		return graph.Render(chart.PNG, w)
	})
}

func renderCompletionChart(split CompletionSplit, path string) error {
	total := split.Done + split.Incomplete

	// zero-count slices are dropped, matching how the chart degrades to a
	// single full circle when everything is (in)complete
	values := []chart.Value{}
	if split.Done > 0 {
		values = append(values, chart.Value{
			Value: float64(split.Done),
			Label: fmt.Sprintf("Complete %.1f%%", 100*float64(split.Done)/float64(total)),
		})
	}
	if split.Incomplete > 0 {
		values = append(values, chart.Value{
			Value: float64(split.Incomplete),
			Label: fmt.Sprintf("Incomplete %.1f%%", 100*float64(split.Incomplete)/float64(total)),
		})
	}

	graph := chart.PieChart{
		Title:  "Completed vs Incomplete",
		Width:  400,
		Height: 400,
		Values: values,
	}
	return renderToFile(path, func(w *os.File) error {
		return graph.Render(chart.PNG, w)
	})
}

func renderTrendChart(points []TrendPoint, path string) error {
	xs := make([]time.Time, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.Date)
		ys = append(ys, float64(p.Count))
	}

	graph := chart.Chart{
		Title:  "Tasks Completed Over Time",
		Width:  700,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	// a single completion date gives a zero x-range, which the renderer
	// rejects; pad the axis to a full day around it
	if len(points) == 1 {
		center := float64(points[0].Date.UnixNano())
		graph.XAxis.Range = &chart.ContinuousRange{
			Min: center - float64(12*time.Hour),
			Max: center + float64(12*time.Hour),
		}
	}

	return renderToFile(path, func(w *os.File) error {
		return graph.Render(chart.PNG, w)
	})
}
