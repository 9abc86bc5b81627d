package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"basecalc/cmd/basecalc/ui"
	"basecalc/internal/backend"
	"basecalc/internal/config"
	"basecalc/internal/eval"
	"basecalc/internal/frontend"
	"basecalc/internal/logging"
	"basecalc/internal/radix"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded configuration and logger, set in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// Version is set at build time via -ldflags.
var Version = "dev"

// rootCmd launches the interactive calculator.
var rootCmd = &cobra.Command{
	Use:   "basecalc",
	Short: "basecalc - multi-radix calculator and conversion toolbox",
	Long: `basecalc is a terminal calculator that reads and writes numbers in
binary, octal, decimal, and hexadecimal, with pages for number, text,
float32, and bit-level conversions.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.CalledAs() == "basecalc" {
			// The TUI owns the terminal; log to file only.
			logger, err = logging.New(cfg.Logging, cfg.LogFile())
		} else {
			logger, err = logging.NewStderr(verbose)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// evalCmd evaluates one expression without the TUI.
var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a single expression and print it in every base",
	Long: `Evaluates one expression through the same pipeline the interactive
calculator uses: the input is read in the selected radix, normalized to a
decimal expression, computed, and the result is printed in binary, octal,
decimal, and hexadecimal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

var (
	evalRadix      uint32
	evalFracDigits int
)

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the basecalc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("basecalc %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.basecalc/config.yaml)")

	evalCmd.Flags().Uint32VarP(&evalRadix, "radix", "r", 0, "input/output radix (2, 8, 10, 16; default from config)")
	evalCmd.Flags().IntVar(&evalFracDigits, "frac-digits", 0, "fractional digits in non-decimal output (default from config)")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
}

// newPipeline wires evaluator, worker, and frontend state from config.
// The caller owns the worker and must call Shutdown.
func newPipeline(cfg *config.Config, log *zap.Logger) (*backend.Worker, *frontend.State, error) {
	timeout, err := cfg.ParseEvalTimeout()
	if err != nil {
		return nil, nil, err
	}
	engine := eval.NewEngine(eval.WithTimeout(timeout), eval.WithLogger(log))
	worker := backend.NewWorker(engine, log)
	state := frontend.New(worker, cfg.Calculator.FracDigits, log)
	state.SetCalculatorRadix(cfg.Calculator.DefaultRadix)
	return worker, state, nil
}

func runInteractive(cmd *cobra.Command) error {
	worker, state, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer worker.Shutdown()

	program := tea.NewProgram(ui.NewAppModel(state, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	r := cfg.Calculator.DefaultRadix
	if evalRadix != 0 {
		r = evalRadix
	}
	if r != 2 && r != 8 && r != 10 && r != 16 {
		return fmt.Errorf("unsupported radix %d (use 2, 8, 10, or 16)", r)
	}
	fracDigits := cfg.Calculator.FracDigits
	if evalFracDigits > 0 {
		fracDigits = evalFracDigits
	}

	input := strings.Join(args, " ")
	decimalExpr, err := radix.Normalize(input, r)
	if err != nil {
		return err
	}

	timeout, err := cfg.ParseEvalTimeout()
	if err != nil {
		return err
	}
	engine := eval.NewEngine(eval.WithTimeout(timeout), eval.WithLogger(logger))
	value, err := engine.Evaluate(decimalExpr)
	if err != nil {
		return err
	}

	fmt.Printf("base %-2d  %s\n", r, radix.Format(value, r, fracDigits))
	for _, other := range []uint32{2, 8, 10, 16} {
		if other == r {
			continue
		}
		fmt.Printf("base %-2d  %s\n", other, radix.Format(value, other, fracDigits))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
