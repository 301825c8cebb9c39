package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/analysis"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// newPlotCmd creates the plot command for rendering transient traces
// and AC magnitude sweeps to an image file.
func newPlotCmd() *cobra.Command {
	var output, title string

	cmd := &cobra.Command{
		Use:   "plot [tran|ac] [file]",
		Short: "Plot simulator results to a PNG, SVG, or PDF file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, path := args[0], args[1]
			if output == "" {
				output = strings.TrimSuffix(path, ".out") + ".png"
			}
			switch kind {
			case "tran":
				return plotTransient(cmd, path, output, title)
			case "ac":
				return plotAC(cmd, path, output, title)
			default:
				return fmt.Errorf("unknown plot kind: %s (must be 'tran' or 'ac')", kind)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output image file (extension selects the format)")
	cmd.Flags().StringVar(&title, "title", "", "plot title")
	return cmd
}

func plotTransient(cmd *cobra.Command, path, output, title string) error {
	logger := loggerFromContext(cmd.Context())

	res := analysis.ParseTransientFile(path)
	if res == nil {
		return fmt.Errorf("no transient data recognized in %s", path)
	}
	logger.Debugf("Loaded %d points, %d columns", len(res.Points), len(res.Columns))

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Value"

	idx := 0
	for _, col := range res.Columns {
		if col == "time" {
			continue
		}
		xys := make(plotter.XYs, len(res.Points))
		for i, pt := range res.Points {
			xys[i].X = pt["time"]
			xys[i].Y = pt[col]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building trace %s: %w", col, err)
		}
		line.Color = plotutil.Color(idx)
		p.Add(line)
		p.Legend.Add(col, line)
		idx++
	}
	if idx == 0 {
		return fmt.Errorf("no plottable columns in %s", path)
	}

	if err := p.Save(plotWidth, plotHeight, output); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	logger.Infof("Wrote %s", output)
	return nil
}

func plotAC(cmd *cobra.Command, path, output, title string) error {
	logger := loggerFromContext(cmd.Context())

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading simulator output: %w", err)
	}
	res := analysis.ParseAC(string(raw))
	if res == nil {
		return fmt.Errorf("no AC sweep recognized in %s", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Magnitude"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	nodes := make([]string, 0, len(res.Magnitude))
	for node := range res.Magnitude {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	for idx, node := range nodes {
		mags := res.Magnitude[node]
		xys := make(plotter.XYs, 0, len(res.Frequencies))
		for i, f := range res.Frequencies {
			if i >= len(mags) || f <= 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: f, Y: mags[i]})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building trace %s: %w", node, err)
		}
		line.Color = plotutil.Color(idx)
		p.Add(line)
		p.Legend.Add(node, line)
	}

	if err := p.Save(plotWidth, plotHeight, output); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	logger.Infof("Wrote %s", output)
	return nil
}
