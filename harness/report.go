package harness

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nozzle/lcgrand/stats"
)

// WriteTo prints the report in a fixed human-readable layout.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "LCG seed: %d, reference MT19937 seed: %d\n\n", r.Seed, r.RefSeed)

	writeHistogram(&b, "Histogram (bin counts) for the LCG:", r.Custom.Histogram)
	writeHistogram(&b, "\nHistogram (bin counts) for the reference:", r.Reference.Histogram)

	fmt.Fprintf(&b, "\nLCG: chi-square = %.4f (p = %.4f)\n", r.Custom.ChiSquare, r.Custom.PValue)
	fmt.Fprintf(&b, "Reference: chi-square = %.4f (p = %.4f)\n", r.Reference.ChiSquare, r.Reference.PValue)

	fmt.Fprintf(&b, "\nLCG: lag-1 autocorrelation = %.6f\n", r.Custom.Autocorrelation)
	fmt.Fprintf(&b, "Reference: lag-1 autocorrelation = %.6f\n", r.Reference.Autocorrelation)

	if r.Config.PeriodSamples > 0 {
		if r.Period == stats.NoPeriod {
			fmt.Fprintf(&b, "\nLCG period: not found in %d values\n", r.Config.PeriodSamples)
		} else {
			fmt.Fprintf(&b, "\nLCG period: %d\n", r.Period)
		}
	}

	p := r.Config.Normal
	writeHistogram(&b, fmt.Sprintf("\nHistogram (bin counts) for the LCG normal N(%g,%g), %d uniforms per sample:",
		p.Mean, p.StdDev*p.StdDev, p.UniformsPerSample), r.Normal.Histogram)
	writeHistogram(&b, fmt.Sprintf("\nHistogram (bin counts) for the LCG exponential (lambda=%g):",
		r.Config.Lambda), r.Exponential.Histogram)

	fmt.Fprintf(&b, "\nLag-1 autocorrelation for normal: %.6f\n", r.Normal.Autocorrelation)
	fmt.Fprintf(&b, "Lag-1 autocorrelation for exponential: %.6f\n", r.Exponential.Autocorrelation)

	fmt.Fprintf(&b, "\nMoments:\n")
	writeSummary(&b, "LCG uniform", r.Custom.Summary)
	writeSummary(&b, "reference uniform", r.Reference.Summary)
	writeSummary(&b, "LCG normal", r.Normal.Summary)
	writeSummary(&b, "reference normal", r.RefNormal)
	writeSummary(&b, "LCG exponential", r.Exponential.Summary)
	writeSummary(&b, "reference exponential", r.RefExponential)

	for _, path := range r.Plots {
		fmt.Fprintf(&b, "\nPlot: %s", path)
	}
	if len(r.Plots) > 0 {
		b.WriteByte('\n')
	}

	return b.WriteTo(w)
}

func writeHistogram(b *bytes.Buffer, title string, h *stats.Histogram) {
	fmt.Fprintln(b, title)
	if h == nil {
		return
	}
	for i, c := range h.Counts {
		fmt.Fprintf(b, "Bin %d (%.1f-%.1f): %d\n", i, h.Edges[i], h.Edges[i+1], c)
	}
}

func writeSummary(b *bytes.Buffer, name string, s stats.Summary) {
	fmt.Fprintf(b, "  %-22s n=%d mean=%.5f variance=%.5f min=%.5f max=%.5f\n",
		name+":", s.N, s.Mean, s.Variance, s.Min, s.Max)
}
