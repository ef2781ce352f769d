package main

import (
	"fmt"

	"github.com/owlpinetech/s2cell/predicates"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func orientationName(det float64) string {
	switch {
	case det < 0:
		return "counterclockwise"
	case det > 0:
		return "clockwise"
	default:
		return "collinear"
	}
}

func circleName(det float64) string {
	switch {
	case det > 0:
		return "inside"
	case det < 0:
		return "outside"
	default:
		return "cocircular"
	}
}

func (a *app) orientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orient AX AY BX BY CX CY",
		Short: "Report the orientation of three points in the plane",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "ax", "ay", "bx", "by", "cx", "cy")
			if err != nil {
				return err
			}
			orient := predicates.Orient2D
			if a.conf.GetBool("fast") {
				orient = predicates.Orient2DFast
			}
			det := orient(v[0], v[1], v[2], v[3], v[4], v[5])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %g\n", orientationName(det), det)
			return errors.Wrap(err, "writing orientation")
		},
	}
	cmd.Flags().Bool("fast", false, "Skip the adaptive error control.")
	return cmd
}

func (a *app) inCircleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incircle AX AY BX BY CX CY DX DY",
		Short: "Report whether D lies inside the circle through A, B and C",
		Long: `
Reports whether D lies inside the circle through A, B and C when those three
points are in counterclockwise order. The answer is reversed for clockwise
input.`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "ax", "ay", "bx", "by", "cx", "cy", "dx", "dy")
			if err != nil {
				return err
			}
			inCircle := predicates.InCircle
			if a.conf.GetBool("fast") {
				inCircle = predicates.InCircleFast
			}
			det := inCircle(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %g\n", circleName(det), det)
			return errors.Wrap(err, "writing incircle")
		},
	}
	cmd.Flags().Bool("fast", false, "Skip the adaptive error control.")
	return cmd
}
