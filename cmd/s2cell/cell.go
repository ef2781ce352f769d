package main

import (
	"github.com/owlpinetech/s2cell"
	"github.com/owlpinetech/s2cell/s2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) writeCells(cmd *cobra.Command, ids []s2.CellID) error {
	out, err := s2cell.FormatCells(a.conf.GetString("format"), ids)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return errors.Wrap(err, "writing cells")
}

func (a *app) cellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cell LON LAT",
		Short: "Print the cell containing a coordinate in degrees",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ll, err := parseLonLat(args)
			if err != nil {
				return err
			}
			level := a.conf.GetInt("level")
			id := s2.CellIDFromLonLat(ll).Parent(level)
			a.log.Debugw("resolved cell", "lonlat", ll.String(), "level", level, "cell", id.String())
			return a.writeCells(cmd, []s2.CellID{id})
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse CELL...",
		Short: "Parse cells given as decimal ids, tokens or face/position strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]s2.CellID, 0, len(args))
			for _, arg := range args {
				id, err := parseCell(arg)
				if err != nil {
					return err
				}
				if a.conf.GetBool("children") {
					if id.IsLeaf() {
						return errors.Errorf("leaf cell %v has no children", id)
					}
					children := id.Children()
					ids = append(ids, children[:]...)
					continue
				}
				ids = append(ids, id)
			}
			return a.writeCells(cmd, ids)
		},
	}
	cmd.Flags().Bool("children", false, "Print the four children of each cell instead of the cell.")
	return cmd
}

func (a *app) neighborsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors CELL",
		Short: "Print the cells sharing an edge or a vertex with a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCell(args[0])
			if err != nil {
				return err
			}
			level := a.conf.GetInt("vertex-level")
			if level < 0 {
				edges := id.EdgeNeighbors()
				return a.writeCells(cmd, edges[:])
			}
			if level >= s2.MaxLevel || level > id.Level() {
				return errors.Errorf("vertex level %d must be below %d and at most the cell level %d",
					level, s2.MaxLevel, id.Level())
			}
			return a.writeCells(cmd, id.VertexNeighbors(level))
		},
	}
	cmd.Flags().Int("vertex-level", -1,
		"When set, print the cells at this level sharing the vertex closest to the cell instead of its edge neighbors.")
	return cmd
}
