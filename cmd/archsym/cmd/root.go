// Package cmd implements the archsym command tree.
package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/archsym/archsym/bsgs"
	"github.com/archsym/archsym/schreier"
)

// ErrUsage marks command-line usage errors (exit code 1).
var ErrUsage = errors.New("usage error")

var (
	cfgFile string
	verbose bool

	logger zerolog.Logger
)

// rootCmd is the archsym entry point.
var rootCmd = &cobra.Command{
	Use:   "archsym",
	Short: "Symmetry analysis of architecture graphs",
	Long: `archsym computes automorphism groups of parallel-computing
architecture graphs and canonical representatives of task mappings
under those symmetries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initConfig()
	},
}

// Execute runs the command tree and returns the terminal error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "archsym:", err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./archsym.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.PersistentFlags().String("construction", "deterministic", "BSGS construction: deterministic, random, solve")
	rootCmd.PersistentFlags().String("transversals", "tree", "Schreier structure: tree, explicit")
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed for randomized paths (0 = nondeterministic)")

	_ = viper.BindPFlag("construction", rootCmd.PersistentFlags().Lookup("construction"))
	_ = viper.BindPFlag("transversals", rootCmd.PersistentFlags().Lookup("transversals"))
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

// initConfig wires viper and the logger.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("archsym")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("ARCHSYM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return nil
}

// bsgsOptions translates the configuration into BSGS construction
// options.
func bsgsOptions() ([]bsgs.Option, error) {
	var opts []bsgs.Option

	switch strings.ToLower(viper.GetString("construction")) {
	case "", "deterministic":
		opts = append(opts, bsgs.WithConstruction(bsgs.Deterministic))
	case "random":
		opts = append(opts, bsgs.WithConstruction(bsgs.Random))
	case "solve":
		opts = append(opts, bsgs.WithConstruction(bsgs.Solve))
	default:
		return nil, fmt.Errorf("%w: unknown construction %q", ErrUsage, viper.GetString("construction"))
	}

	switch strings.ToLower(viper.GetString("transversals")) {
	case "", "tree":
		opts = append(opts, bsgs.WithTransversals(schreier.Tree))
	case "explicit":
		opts = append(opts, bsgs.WithTransversals(schreier.Explicit))
	default:
		return nil, fmt.Errorf("%w: unknown transversal variant %q", ErrUsage, viper.GetString("transversals"))
	}

	if seed := viper.GetInt64("seed"); seed != 0 {
		opts = append(opts, bsgs.WithRand(rand.New(rand.NewSource(seed))))
	}
	opts = append(opts, bsgs.WithLogger(logger))

	return opts, nil
}
