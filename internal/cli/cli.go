// Package cli implements the gridpath command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/gridfile"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/server"
)

// Version is reported by --version.
const Version = "0.1.0"

// app carries the persistent flags shared by every subcommand.
type app struct {
	configFile string
	logLevel   string
}

// BuildCLI assembles the root command and its subcommands.
func BuildCLI() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gridpath",
		Short: "A* path search on occupancy grids",
		Long: `gridpath finds routes between two cells of a grid where every cell is
either open or blocked. Moves go to any of the 8 neighbors at unit cost.

Grids are YAML documents with "rows" strings ('1' or '.' open, '0' or '#'
blocked) or numeric "cells", and optional source/destination as [col, row].`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file path (defaults built in)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(a.buildSearchCommand())
	rootCmd.AddCommand(a.buildGenerateCommand())
	rootCmd.AddCommand(a.buildInspectCommand())
	rootCmd.AddCommand(a.buildServeCommand())

	return rootCmd
}

// load reads the config file and applies flag overrides.
func (a *app) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		if _, err := config.ParseLevel(a.logLevel); err != nil {
			return nil, nil, err
		}
		cfg.Log.Level = a.logLevel
	}

	return cfg, cfg.Logger(cmd.ErrOrStderr()), nil
}

func (a *app) buildSearchCommand() *cobra.Command {
	var (
		gridFile   string
		from, to   string
		heuristic  string
		skipClosed bool
		render     bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path on a grid file",
		Long:  "Find a path between two cells. --from/--to override the endpoints stored in the grid file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			if heuristic != "" {
				cfg.Search.Heuristic = heuristic
			}
			if cmd.Flags().Changed("skip-closed") {
				cfg.Search.SkipClosed = skipClosed
			}

			doc, err := gridfile.Load(gridFile)
			if err != nil {
				return err
			}
			gg, err := doc.Grid(gridgraph.DefaultGridOptions())
			if err != nil {
				return fmt.Errorf("%s: %w", gridFile, err)
			}
			src, dst, err := endpoints(doc, from, to)
			if err != nil {
				return err
			}

			opts, err := cfg.SearchOptions()
			if err != nil {
				return err
			}
			var stats astar.Stats
			opts = append(opts,
				astar.WithLogger(log),
				astar.WithObserver(astar.ObserverFunc(func(s astar.Stats) { stats = s })),
			)

			path, err := astar.Search(gg, src, dst, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, path)
			fmt.Fprintf(out, "cells: %d  steps: %d  expanded: %d  took: %s\n",
				path.Len(), path.Steps(), stats.Expanded, stats.Duration.Round(time.Microsecond))
			if render {
				fmt.Fprint(out, Render(gg, path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&gridFile, "grid", "g", "", "YAML grid file")
	cmd.Flags().StringVar(&from, "from", "", "source cell as col,row")
	cmd.Flags().StringVar(&to, "to", "", "destination cell as col,row")
	cmd.Flags().StringVar(&heuristic, "heuristic", "", "heuristic: "+strings.Join(astar.HeuristicNames(), ", "))
	cmd.Flags().BoolVar(&skipClosed, "skip-closed", false, "skip frontier entries of already expanded cells")
	cmd.Flags().BoolVar(&render, "render", false, "print the grid with the path marked '*'")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}

func (a *app) buildGenerateCommand() *cobra.Command {
	var (
		rows, cols int
		density    float64
		seed       int64
		wallCol    int
		gaps       []int
		from, to   string
		outFile    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random or walled grid file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var keep []gridgraph.Point
			var src, dst gridgraph.Point
			withEnds := from != "" && to != ""
			if withEnds {
				var err error
				if src, err = ParsePoint(from); err != nil {
					return err
				}
				if dst, err = ParsePoint(to); err != nil {
					return err
				}
				keep = append(keep, src, dst)
			}

			var values [][]int
			var err error
			if cmd.Flags().Changed("wall-col") {
				values, err = builder.Wall(rows, cols, wallCol, gaps...)
				if err == nil {
					err = openCells(values, keep)
				}
			} else {
				if !cmd.Flags().Changed("seed") {
					seed = time.Now().UnixNano()
				}
				if density < 0 || density > 1 {
					return fmt.Errorf("density %v outside [0,1]", density)
				}
				values, err = builder.Random(rows, cols,
					builder.WithSeed(seed), builder.WithDensity(density), builder.WithKeepOpen(keep...))
			}
			if err != nil {
				return err
			}

			doc := gridfile.FromValues(values)
			if withEnds {
				doc.SetEndpoints(src, dst)
			}
			return writeDocument(cmd.OutOrStdout(), outFile, doc)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 16, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 16, "number of columns")
	cmd.Flags().Float64Var(&density, "density", 0.3, "probability of a blocked cell")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().IntVar(&wallCol, "wall-col", 0, "build a full-height wall at this column instead of random cells")
	cmd.Flags().IntSliceVar(&gaps, "gap", nil, "rows left open in the wall")
	cmd.Flags().StringVar(&from, "from", "", "source cell to store, col,row")
	cmd.Flags().StringVar(&to, "to", "", "destination cell to store, col,row")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	return cmd
}

func (a *app) buildInspectCommand() *cobra.Command {
	var gridFile string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print size, open cells and connectivity of a grid file",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := gridfile.Load(gridFile)
			if err != nil {
				return err
			}
			gg, err := doc.Grid(gridgraph.DefaultGridOptions())
			if err != nil {
				return fmt.Errorf("%s: %w", gridFile, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size: %dx%d (cols x rows)\n", gg.Width, gg.Height)
			fmt.Fprintf(out, "open: %d of %d\n", gg.OpenCount(), gg.Size())
			fmt.Fprintf(out, "components: %d\n", len(gg.ConnectedComponents()))
			if src, dst, ok := doc.Endpoints(); ok {
				fmt.Fprintf(out, "endpoints: %v -> %v connected=%t\n", src, dst, gg.Connected(src, dst))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&gridFile, "grid", "g", "", "YAML grid file")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}

func (a *app) buildServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP search service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			tp, shutdownTracing, err := server.NewTracerProvider(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracing(ctx); err != nil {
					log.Error("failed to flush traces", slog.String("error", err.Error()))
				}
			}()

			srv, err := server.New(cfg, log, server.WithTracerProvider(tp))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// endpoints resolves the search endpoints, flags first, then the document.
func endpoints(doc *gridfile.Document, from, to string) (src, dst gridgraph.Point, err error) {
	src, dst, ok := doc.Endpoints()
	if from != "" {
		if src, err = ParsePoint(from); err != nil {
			return src, dst, err
		}
	}
	if to != "" {
		if dst, err = ParsePoint(to); err != nil {
			return src, dst, err
		}
	}
	if !ok && (from == "" || to == "") {
		return src, dst, fmt.Errorf("source and destination are required: use --from/--to or set them in the grid file")
	}

	return src, dst, nil
}

// ParsePoint parses "col,row".
func ParsePoint(s string) (gridgraph.Point, error) {
	cs, rs, found := strings.Cut(s, ",")
	if !found {
		return gridgraph.Point{}, fmt.Errorf("invalid cell %q: want col,row", s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}

	return gridgraph.Pt(c, r), nil
}

// Render draws gg with '.' open, '#' blocked and '*' on path cells.
func Render(gg *gridgraph.GridGraph, path astar.Path) string {
	onPath := make(map[gridgraph.Point]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			switch _, hit := onPath[gridgraph.Pt(x, y)]; {
			case hit:
				sb.WriteByte('*')
			case gg.IsOpen(x, y):
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// openCells marks pts open in values; points outside the grid are an error.
func openCells(values [][]int, pts []gridgraph.Point) error {
	for _, p := range pts {
		if p.Y < 0 || p.Y >= len(values) || p.X < 0 || p.X >= len(values[p.Y]) {
			return fmt.Errorf("cell %v is outside the %dx%d grid", p, len(values[0]), len(values))
		}
		values[p.Y][p.X] = 1
	}

	return nil
}

func writeDocument(stdout io.Writer, path string, doc *gridfile.Document) error {
	if path == "" {
		return gridfile.Encode(stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := gridfile.Encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
