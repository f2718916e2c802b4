package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"saleschart/internal/config"
	"saleschart/pkg/chart/layout"
	"saleschart/pkg/errors"
	"saleschart/pkg/sales"
	"saleschart/pkg/sales/httpapi"
	"saleschart/pkg/sales/postgres"
)

// newWatchCmd creates the watch command: a live terminal bar chart that
// refreshes on an interval.
func newWatchCmd(configPath *string) *cobra.Command {
	var (
		interval time.Duration
		top      int
		fromDB   bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the sales chart live in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			var provider sales.Provider
			if fromDB {
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

			m := newWatchModel(provider, interval, top)
			_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "refresh interval")
	cmd.Flags().IntVar(&top, "top", 0, "keep only the first N records (0 keeps all)")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "fetch from Postgres instead of the HTTP API")

	return cmd
}

// fetchedMsg carries one fetch result along with the generation that
// dispatched it.
type fetchedMsg struct {
	gen     int
	dataset sales.Dataset
	err     error
}

// tickMsg triggers the next refresh cycle.
type tickMsg time.Time

// watchModel drives the fetch-then-layout-then-paint refresh cycle.
//
// Each refresh is sequential and non-overlapping from the model's point of
// view: a new fetch bumps the generation, and results arriving for an
// older generation are discarded (last-write-wins). A fetch that never
// resolves simply leaves the previous frame on screen.
type watchModel struct {
	provider sales.Provider
	interval time.Duration
	top      int

	gen        int // generation of the newest dispatched fetch
	dataset    sales.Dataset
	err        error
	loading    bool
	lastUpdate time.Time
	width      int
}

func newWatchModel(provider sales.Provider, interval time.Duration, top int) watchModel {
	return watchModel{
		provider: provider,
		interval: interval,
		top:      top,
		gen:      1,
		loading:  true,
		width:    80,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(m.gen), m.tickCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		m.gen++
		return m, tea.Batch(m.fetchCmd(m.gen), m.tickCmd())

	case fetchedMsg:
		if msg.gen != m.gen {
			// A newer fetch is in flight; this result is stale.
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.dataset = msg.dataset.Top(m.top)
			m.lastUpdate = time.Now()
		}
	}
	return m, nil
}

// fetchCmd performs one fetch, tagged with the generation that dispatched
// it.
func (m watchModel) fetchCmd(gen int) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ds, err := provider.Fetch(context.Background())
		return fetchedMsg{gen: gen, dataset: ds, err: err}
	}
}

func (m watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Vendas por Produto"))
	if !m.lastUpdate.IsZero() {
		b.WriteString("  ")
		b.WriteString(StyleDim.Render("updated " + m.lastUpdate.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		// Error state replaces the chart; no partial output.
		b.WriteString(StyleError.Render("fetch failed: " + errors.UserMessage(m.err)))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(StyleDim.Render("loading..."))
		b.WriteString("\n")
	case len(m.dataset) == 0:
		b.WriteString(StyleDim.Render("no data"))
		b.WriteString("\n")
	default:
		for _, line := range m.barLines() {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("q quit · refreshing every %s", m.interval)))
	return b.String()
}

// barLines paints the dataset as rows of block glyphs. The widths come
// from the same pure layout used by the file sinks, computed on a canvas
// whose unit is one terminal cell.
func (m watchModel) barLines() []string {
	labelWidth := 0
	for _, r := range m.dataset {
		if n := len([]rune(r.Produto)); n > labelWidth {
			labelWidth = n
		}
	}
	if labelWidth > 24 {
		labelWidth = 24
	}

	// Columns available for bars after the label, separators, and value.
	barArea := m.width - labelWidth - 10
	if barArea < 10 {
		barArea = 10
	}

	l := layout.Compute(m.dataset, layout.Canvas{
		Width:  float64(barArea),
		Height: float64(len(m.dataset)),
		Margin: layout.Margin{},
	})

	lines := make([]string, 0, len(l.Bars))
	for _, bar := range l.Bars {
		cells := int(math.Round(bar.Width))
		label := bar.Label
		if n := len([]rune(label)); n > labelWidth {
			label = string([]rune(label)[:labelWidth-1]) + "…"
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %d",
			labelWidth, label,
			StyleBar.Render(strings.Repeat("█", cells)),
			int(bar.Value)))
	}
	return lines
}
