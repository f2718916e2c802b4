package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"saleschart/internal/config"
	"saleschart/pkg/chart/layout"
	"saleschart/pkg/chart/sink"
	"saleschart/pkg/errors"
	"saleschart/pkg/sales"
	"saleschart/pkg/sales/httpapi"
	"saleschart/pkg/sales/postgres"
)

// Output format names.
const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatJSON = "json"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	formatSVG:  true,
	formatPNG:  true,
	formatJSON: true,
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // base output path; format extension is appended
	formats string  // comma-separated output formats
	top     int     // keep only the first N records (0 = all)
	width   float64 // canvas width override
	height  float64 // canvas height override
	title   string  // chart title
	fromDB  bool    // fetch from Postgres instead of the HTTP API
}

// newRenderCmd creates the render command: one fetch, one layout, one or
// more output files.
func newRenderCmd(configPath *string) *cobra.Command {
	opts := renderOpts{
		output:  "chart",
		formats: formatSVG,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the sales chart to SVG, PNG, or JSON geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(opts.formats)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			canvas := cfg.Canvas.Layout()
			if cmd.Flags().Changed("width") {
				canvas.Width = opts.width
			}
			if cmd.Flags().Changed("height") {
				canvas.Height = opts.height
			}

			var provider sales.Provider
			if opts.fromDB {
				if cfg.DatabaseURL == "" {
					return errors.New(errors.ErrCodeInvalidConfig, "--from-db requires DATABASE_URL or database_url in the config file")
				}
				pg, err := postgres.Open(ctx, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer func() { _ = pg.Close() }()
				provider = pg
			} else {
				provider = httpapi.NewClient(cfg.APIBaseURL)
			}

			sp := newSpinner(ctx, "Fetching sales data...")
			sp.Start()
			ds, err := provider.Fetch(ctx)
			if err != nil {
				sp.StopWithError("fetch failed")
				return err
			}
			sp.Stop()

			// Truncation happens before layout, never inside it.
			ds = ds.Top(opts.top)
			logger.Debug("fetched dataset", "records", len(ds))

			prog := newProgress(logger)
			l := layout.Compute(ds, canvas)
			prog.done(fmt.Sprintf("Computed layout for %d bars", len(l.Bars)))

			for _, format := range formats {
				data, err := renderFormat(l, format, opts.title)
				if err != nil {
					return err
				}
				path := opts.output + "." + format
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
				}
				printFile(path)
			}
			printSuccess("Rendered %d bar(s)", len(l.Bars))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path (format extension is appended)")
	cmd.Flags().StringVarP(&opts.formats, "formats", "f", opts.formats, "comma-separated output formats: svg, png, json")
	cmd.Flags().IntVar(&opts.top, "top", 0, "keep only the first N records (0 keeps all)")
	cmd.Flags().Float64Var(&opts.width, "width", 600, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 300, "canvas height in pixels")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().BoolVar(&opts.fromDB, "from-db", false, "fetch from Postgres instead of the HTTP API")

	return cmd
}

// renderFormat dispatches to the matching sink.
func renderFormat(l layout.Layout, format, title string) ([]byte, error) {
	switch format {
	case formatSVG:
		var opts []sink.SVGOption
		if title != "" {
			opts = append(opts, sink.WithTitle(title))
		}
		return sink.RenderSVG(l, opts...), nil
	case formatPNG:
		return sink.RenderPNG(l)
	case formatJSON:
		return sink.RenderJSON(l)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// parseFormats splits and validates the --formats flag.
func parseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if !validFormats[f] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (valid: svg, png, json)", f)
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output formats given")
	}
	return formats, nil
}
