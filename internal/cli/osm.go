// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/paulmach/osm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/osmgraph"
)

type osmFlags struct {
	file   string
	source int64
	target int64
}

func newOSMCmd(gf *globalFlags) *cobra.Command {
	f := &osmFlags{}
	cmd := &cobra.Command{
		Use:   "osm",
		Short: "Road distances (metres) over an OpenStreetMap XML extract",
		Example: `  lvlpath osm --file town.osm --source 2620 --target 9381
  lvlpath osm --file town.osm --source 2620`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOSM(cmd, gf, f)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "OSM XML file")
	cmd.Flags().Int64VarP(&f.source, "source", "s", 0, "source node ID")
	cmd.Flags().Int64VarP(&f.target, "target", "t", 0, "target node ID; omit to count reachable nodes")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runOSM(cmd *cobra.Command, gf *globalFlags, f *osmFlags) (err error) {
	log, closeLog, err := gf.logger(cmd)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeLog)

	file, err := os.Open(f.file)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	defer file.Close()

	g, err := osmgraph.Build(cmd.Context(), file)
	if err != nil {
		log.Error("cannot build road graph", "file", f.file, "err", err)
		return err
	}
	log.Debug("road graph built", "nodes", g.Order(), "arcs", g.Size())

	opts := []dijkstra.Option[osm.NodeID, float64]{
		dijkstra.WithLogger[osm.NodeID, float64](log),
	}
	withTarget := cmd.Flags().Changed("target")
	if withTarget {
		opts = append(opts, dijkstra.WithReturnPath[osm.NodeID, float64]())
	}

	res, err := dijkstra.Run(g, osm.NodeID(f.source), opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !withTarget {
		fmt.Fprintf(out, "reachable %d of %d nodes\n", len(res.Dist), g.Order())
		return nil
	}

	target := osm.NodeID(f.target)
	path, err := res.PathTo(target)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "distance %.1f m\n", res.Dist[target])
	fmt.Fprint(out, "path")
	for _, id := range path {
		fmt.Fprintf(out, " %d", id)
	}
	fmt.Fprintln(out)

	return nil
}
