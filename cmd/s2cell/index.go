package main

import (
	"fmt"

	"github.com/owlpinetech/healpix"
	"github.com/owlpinetech/s2cell"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var indexerNames = []string{"cell", "healpix", "equirectangular"}

func (a *app) indexer() (s2cell.LocationIndexer, error) {
	switch name := a.conf.GetString("indexer"); name {
	case "cell":
		return s2cell.NewCellIndexer(a.conf.GetInt("level"), nil)
	case "healpix":
		var scheme healpix.HealpixScheme
		switch s := a.conf.GetString("healpix-scheme"); s {
		case "nest":
			scheme = healpix.NestScheme
		case "ring":
			scheme = healpix.RingScheme
		default:
			return nil, errors.Errorf("unknown healpix scheme %q, expected nest or ring", s)
		}
		order := a.conf.GetInt("healpix-order")
		if order < 0 || order > 29 {
			return nil, errors.Errorf("healpix order %d outside [0, 29]", order)
		}
		return s2cell.NewHealpixIndexer(healpix.HealpixOrder(order), scheme), nil
	case "equirectangular":
		width, height := a.conf.GetInt("grid-width"), a.conf.GetInt("grid-height")
		if width <= 0 || height <= 0 {
			return nil, errors.Errorf("grid %dx%d must have positive dimensions", width, height)
		}
		return s2cell.NewEquirectangularIndexer(0, width, height, true), nil
	default:
		return nil, errors.Errorf("unknown indexer %q, expected one of %v", name, indexerNames)
	}
}

func (a *app) indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index LON LAT",
		Short: "Print the dense index of a coordinate under one of the sphere indexers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ll, err := parseLonLat(args)
			if err != nil {
				return err
			}
			indexer, err := a.indexer()
			if err != nil {
				return err
			}
			index, err := indexer.ToIndex(s2cell.LonLatLocation(ll))
			if err != nil {
				return errors.Wrapf(err, "indexing %v with %s", ll, indexer.Name())
			}
			a.log.Debugw("indexed location", "indexer", indexer.Name(), "index", index)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %d %d\n", indexer.Name(), index, indexer.Size())
			return errors.Wrap(err, "writing index")
		},
	}
	flags := cmd.Flags()
	flags.String("indexer", "cell", fmt.Sprintf("Indexer to use, one of %v.", indexerNames))
	flags.Int("healpix-order", 4, "Order of the HEALPix indexer.")
	flags.String("healpix-scheme", "nest", "Pixel numbering of the HEALPix indexer, nest or ring.")
	flags.Int("grid-width", 360, "Columns of the equirectangular grid.")
	flags.Int("grid-height", 180, "Rows of the equirectangular grid.")
	return cmd
}
