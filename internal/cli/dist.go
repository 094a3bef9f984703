// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/adjlist"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// ErrBadFlag indicates a flag value the search cannot accept.
var ErrBadFlag = errors.New("cli: invalid flag value")

type distFlags struct {
	graph        string
	source       string
	path         bool
	maxDistance  float64
	infThreshold float64
}

func newDistCmd(gf *globalFlags) *cobra.Command {
	f := &distFlags{}
	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Print shortest distances from a source vertex of a YAML graph fixture",
		Example: `  lvlpath dist --graph roads.yaml --source A
  lvlpath dist --graph roads.yaml --source A --path --max-distance 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDist(cmd, gf, f)
		},
	}
	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "YAML graph document")
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "source vertex")
	cmd.Flags().BoolVarP(&f.path, "path", "p", false, "print one shortest path per vertex")
	cmd.Flags().Float64Var(&f.maxDistance, "max-distance", 0, "skip vertices farther than this distance")
	cmd.Flags().Float64Var(&f.infThreshold, "inf-threshold", 0, "treat edges at least this heavy as impassable")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runDist(cmd *cobra.Command, gf *globalFlags, f *distFlags) (err error) {
	log, closeLog, err := gf.logger(cmd)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeLog)

	opts, err := f.searchOptions(cmd)
	if err != nil {
		return err
	}
	opts = append(opts, dijkstra.WithLogger[string, float64](log))

	file, err := os.Open(f.graph)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	defer file.Close()

	g, err := adjlist.Decode(file)
	if err != nil {
		log.Error("invalid graph document", "file", f.graph, "err", err)
		return err
	}
	log.Debug("graph loaded", "file", f.graph, "vertices", g.Order(), "arcs", g.Size())

	res, err := dijkstra.Run(g, f.source, opts...)
	if err != nil {
		return err
	}
	log.Info("search complete", "source", f.source, "reachable", len(res.Dist), "vertices", g.Order())

	out := cmd.OutOrStdout()
	for _, v := range adjlist.SortedVertices(g) {
		d, ok := res.DistanceTo(v)
		if !ok {
			continue
		}
		if !f.path {
			fmt.Fprintf(out, "%s\t%g\n", v, d)
			continue
		}
		p, err := res.PathTo(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%g\t%s\n", v, d, strings.Join(p, " -> "))
	}

	return nil
}

// searchOptions converts the flags that were actually set into search options.
func (f *distFlags) searchOptions(cmd *cobra.Command) ([]dijkstra.Option[string, float64], error) {
	var opts []dijkstra.Option[string, float64]
	if f.path {
		opts = append(opts, dijkstra.WithReturnPath[string, float64]())
	}
	if cmd.Flags().Changed("max-distance") {
		if f.maxDistance < 0 {
			return nil, fmt.Errorf("%w: --max-distance=%g must be non-negative", ErrBadFlag, f.maxDistance)
		}
		opts = append(opts, dijkstra.WithMaxDistance[string](f.maxDistance))
	}
	if cmd.Flags().Changed("inf-threshold") {
		if f.infThreshold <= 0 {
			return nil, fmt.Errorf("%w: --inf-threshold=%g must be positive", ErrBadFlag, f.infThreshold)
		}
		opts = append(opts, dijkstra.WithInfEdgeThreshold[string](f.infThreshold))
	}

	return opts, nil
}
