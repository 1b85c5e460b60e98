package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/conv/internal/config"
	"github.com/papapumpkin/conv/internal/repl"
	"github.com/papapumpkin/conv/internal/ui"
	"github.com/papapumpkin/conv/internal/unit"
)

// errBadArgs marks an invocation rejected before any conversion ran.
// Usage has already been printed by the time it surfaces, so Execute
// adds nothing for it.
var errBadArgs = errors.New("invalid arguments")

var rootCmd = &cobra.Command{
	Use:   "conv [flags] <value> <from_unit> <to_unit>",
	Short: "Convert a value between units of the same measurement category",
	Long: `Conv converts a numeric value between units of the same measurement
category: temperature, length, weight, volume, data size, and time.

Units are looked up case-insensitively by symbol; run with --list to
see every known unit grouped by category.`,
	Example: `  conv 100 c f
  conv 1.5 mi km
  conv -l
  conv -i`,
	Version:       "1.2.0",
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errBadArgs) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .conv.yaml)")
	rootCmd.Flags().BoolP("list", "l", false, "print all known units grouped by category")
	rootCmd.Flags().BoolP("repl", "i", false, "enter the interactive read-eval-print loop")
	rootCmd.Flags().Bool("plain", false, "use the line-oriented REPL even on a terminal")
	rootCmd.Flags().IntP("precision", "p", 4, "maximum decimal places in results")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".conv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CONV")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig reads the config and applies CLI flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("precision") {
		if v, _ := cmd.Flags().GetInt("precision"); v >= 0 {
			cfg.Precision = v
		}
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		printer := ui.New(cfg.Color && isTTY(os.Stdout))
		fmt.Fprint(cmd.OutOrStdout(), printer.Listing(unit.Groups()))
		return nil
	}

	if interactive, _ := cmd.Flags().GetBool("repl"); interactive {
		plain, _ := cmd.Flags().GetBool("plain")
		return runREPL(cfg, plain)
	}

	if len(args) != 3 {
		_ = cmd.Usage()
		return errBadArgs
	}
	return convertOnce(args, cfg.Precision, cmd.OutOrStdout())
}

// convertOnce runs a single positional-mode conversion and prints the
// result line to out.
func convertOnce(args []string, precision int, out io.Writer) error {
	line, err := repl.EvalFields(args[0], args[1], args[2], precision)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, line)
	return nil
}
