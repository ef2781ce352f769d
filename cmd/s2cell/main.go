// Command s2cell inspects S2 cells, caps and planar predicates from the
// command line.
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/owlpinetech/s2cell/s1"
	"github.com/owlpinetech/s2cell/s2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "S2CELL"

// app carries the configuration and logger shared by every command.
type app struct {
	conf *viper.Viper
	log  *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{conf: viper.New(), log: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "s2cell",
		Short: "Inspect S2 cells, caps and geometric predicates",
		Long: `
s2cell converts coordinates to S2 cell ids, walks the cell hierarchy, covers
spherical caps with cells and evaluates robust planar predicates. Negative
numbers must follow a "--" separator so they are not read as flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	flags := root.PersistentFlags()
	flags.String("config", "",
		"Configuration file. Values in it are overridden by environment variables and flags.")
	flags.Bool("verbose", false, "Log at debug level in a human readable format.")
	flags.Int("level", 10, "Cell level used when converting coordinates to cells.")
	flags.String("format", "ids", "Output format for cell lists, one of [geojson, ids, wkt].")
	flags.Float64("earth-radius", s1.EarthRadiusMeters, "Radius in meters used to convert distances to angles.")

	root.AddCommand(
		a.cellCmd(),
		a.parseCmd(),
		a.neighborsCmd(),
		a.coverCmd(),
		a.orientCmd(),
		a.inCircleCmd(),
		a.indexCmd(),
	)
	return root
}

// setup binds the executing command's flags, reads the optional config file
// and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.conf.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	a.conf.SetEnvPrefix(envPrefix)
	a.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.conf.AutomaticEnv()

	if cfg := a.conf.GetString("config"); cfg != "" {
		a.conf.SetConfigFile(cfg)
		if err := a.conf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cfg)
		}
	}

	var logger *zap.Logger
	var err error
	if a.conf.GetBool("verbose") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	a.log = logger.Sugar().With("command", cmd.Name())

	if level := a.conf.GetInt("level"); level < 0 || level > s2.MaxLevel {
		return errors.Errorf("level %d outside [0, %d]", level, s2.MaxLevel)
	}
	return nil
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	vals := make([]float64, len(args))
	for k, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", names[k])
		}
		vals[k] = v
	}
	return vals, nil
}

func parseLonLat(args []string) (s2.LonLat, error) {
	vals, err := parseFloats(args, "longitude", "latitude")
	if err != nil {
		return s2.LonLat{}, err
	}
	ll := s2.LonLat{Lon: vals[0], Lat: vals[1]}
	if !ll.IsValid() {
		return s2.LonLat{}, errors.Errorf("coordinate %v out of range", ll)
	}
	return ll, nil
}

// parseCell accepts a decimal id, a "f/ddd" string or a hex token.
func parseCell(arg string) (s2.CellID, error) {
	var id s2.CellID
	switch {
	case strings.Contains(arg, "/"):
		id = s2.CellIDFromString(arg)
	default:
		if n, err := strconv.ParseUint(arg, 10, 64); err == nil && len(arg) > 16 {
			id = s2.CellID(n)
		} else {
			id = s2.CellIDFromToken(arg)
		}
	}
	if !id.IsValid() {
		return 0, errors.Errorf("%q is not a valid cell", arg)
	}
	return id, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
