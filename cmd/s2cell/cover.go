package main

import (
	"github.com/owlpinetech/s2cell"
	"github.com/owlpinetech/s2cell/s1"
	"github.com/owlpinetech/s2cell/s2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) coverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover LON LAT RADIUS_KM",
		Short: "Print the cells intersecting a cap around a coordinate",
		Long: `
Builds a spherical cap centered on LON LAT in degrees with a radius in
kilometers and prints the cells covering it. With --cap the cap itself is
written as GeoJSON instead.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ll, err := parseLonLat(args[:2])
			if err != nil {
				return err
			}
			vals, err := parseFloats(args[2:], "radius")
			if err != nil {
				return err
			}
			if vals[0] < 0 {
				return errors.Errorf("negative radius %g", vals[0])
			}

			radius := s1.AngleFromKilometersOn(vals[0], a.conf.GetFloat64("earth-radius"))
			c := s2.CapFromCenterAngle(ll.Point(), radius, args[2])

			if vertices := a.conf.GetInt("cap"); vertices > 0 {
				out, err := s2cell.CapToGeoJSON(c, vertices)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return errors.Wrap(err, "writing cap")
			}

			ids := c.IntersectingCells()
			a.log.Infow("covered cap", "cap", c.String(), "cells", len(ids))
			return a.writeCells(cmd, ids)
		},
	}
	cmd.Flags().Int("cap", 0, "Write the cap as GeoJSON with a boundary of this many vertices.")
	return cmd
}
