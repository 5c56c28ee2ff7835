package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nozzle/lcgrand/stats"
)

// writePlots renders every histogram in the report as a PNG bar chart.
func writePlots(dir string, r *Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create plot dir %s", dir)
	}

	charts := []struct {
		file  string
		title string
		h     *stats.Histogram
	}{
		{"lcg_uniform.png", "LCG uniform", r.Custom.Histogram},
		{"reference_uniform.png", "MT19937 uniform", r.Reference.Histogram},
		{"lcg_normal.png", "LCG normal", r.Normal.Histogram},
		{"lcg_exponential.png", "LCG exponential", r.Exponential.Histogram},
	}

	var written []string
	for _, c := range charts {
		path := filepath.Join(dir, c.file)
		if err := plotHistogram(path, c.title, c.h); err != nil {
			return written, errors.Wrapf(err, "plot %s", c.title)
		}
		written = append(written, path)
	}
	return written, nil
}

func plotHistogram(path, title string, h *stats.Histogram) error {
	values := make(plotter.Values, len(h.Counts))
	labels := make([]string, len(h.Counts))
	for i, c := range h.Counts {
		values[i] = float64(c)
		labels[i] = fmt.Sprintf("%.1f", h.Edges[i])
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Bin lower edge"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
