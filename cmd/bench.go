package cmd

import (
	"fmt"
	"os"

	"github.com/clems4ever/ccorpus/bench"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	benchConfigPath string
	benchCfg        = bench.DefaultConfig()
)

var benchCmd = &cobra.Command{
	Use:   "bench [binary...]",
	Short: "Time tokenizer binaries on generated inputs of growing size",
	Long: `Generates test<size>.c samples, runs "<binary> --tokenize <sample>" for every
binary and sample, and writes an HTML report with a size vs. runtime chart.
A <binary>.flags file next to a binary is shown in its legend entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := benchCfg
		if benchConfigPath != "" {
			loaded, err := bench.LoadConfig(benchConfigPath)
			if err != nil {
				return err
			}
			cfg = mergeFlags(cmd, loaded)
		}
		cfg.Binaries = append(cfg.Binaries, args...)
		if err := cfg.Validate(); err != nil {
			return err
		}
		if len(cfg.Binaries) == 0 && cfg.Reference == "" {
			return fmt.Errorf("nothing to benchmark: pass binaries or --reference")
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "generating input files...")
		samples, err := bench.Generate(cfg.SampleDir, cfg.Steps, cfg.StepSize)
		if err != nil {
			return err
		}

		r := &bench.Runner{Threshold: cfg.Threshold, Timeout: cfg.Timeout, Logger: logger}
		for _, name := range cfg.Binaries {
			b, err := bench.LoadBinary(name)
			if err != nil {
				return err
			}
			r.Binaries = append(r.Binaries, b)
		}
		if cfg.Reference != "" {
			ref, err := bench.NewTiktokenReference(cfg.Reference)
			if err != nil {
				return err
			}
			r.Reference = ref
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "lexing...")
		res, runErr := r.Run(cmd.Context(), samples)
		if runErr != nil {
			logger.Warn("some invocations failed", zap.Error(runErr))
		}
		if res == nil {
			return runErr
		}

		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		defer f.Close()
		if err := bench.WriteReport(f, "Tokenizer runtime", res); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written", zap.String("path", cfg.Output))
		return f.Close()
	},
}

// mergeFlags lets explicitly set flags win over the config file.
func mergeFlags(cmd *cobra.Command, cfg bench.Config) bench.Config {
	flags := cmd.Flags()
	if flags.Changed("sample-dir") {
		cfg.SampleDir = benchCfg.SampleDir
	}
	if flags.Changed("steps") {
		cfg.Steps = benchCfg.Steps
	}
	if flags.Changed("step-size") {
		cfg.StepSize = benchCfg.StepSize
	}
	if flags.Changed("threshold") {
		cfg.Threshold = benchCfg.Threshold
	}
	if flags.Changed("timeout") {
		cfg.Timeout = benchCfg.Timeout
	}
	if flags.Changed("output") {
		cfg.Output = benchCfg.Output
	}
	if flags.Changed("reference") {
		cfg.Reference = benchCfg.Reference
	}
	return cfg
}

func init() {
	rootCmd.AddCommand(benchCmd)

	f := benchCmd.Flags()
	f.StringVarP(&benchConfigPath, "config", "c", "", "YAML file with the benchmark settings")
	f.StringVar(&benchCfg.SampleDir, "sample-dir", benchCfg.SampleDir, "Directory for generated samples")
	f.IntVar(&benchCfg.Steps, "steps", benchCfg.Steps, "Number of samples")
	f.Int64Var(&benchCfg.StepSize, "step-size", benchCfg.StepSize, "Size increment between samples in bytes")
	f.DurationVar(&benchCfg.Threshold, "threshold", 0, "Stop measuring a binary once a run takes longer, reusing that time")
	f.DurationVar(&benchCfg.Timeout, "timeout", 0, "Kill an invocation after this long")
	f.StringVarP(&benchCfg.Output, "output", "o", benchCfg.Output, "Report file")
	f.StringVar(&benchCfg.Reference, "reference", "", "Also plot an in-process tiktoken encoding, e.g. cl100k_base")
}
