package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"alphapanel/internal/alpha"
	"alphapanel/internal/analysis"
	"alphapanel/internal/backtest"
	"alphapanel/internal/config"
	"alphapanel/internal/engine"
	"alphapanel/internal/loader"
	"alphapanel/internal/panel"
	"alphapanel/internal/store"
)

const (
	appName = "alphapanel"
	version = "v0.3.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Cross-sectional factor computation over OHLCV panels",
		Version: version,
		Long: `alphapanel evaluates a registry of 191 price/volume factors over a
wide-matrix market panel: load long-format CSV, reshape, compute, and
export or persist the results.`,
	}

	rootCmd.AddCommand(newComputeCmd(), newListCmd(), newICCmd(), newBacktestCmd(), newRunsCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered factor IDs",
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range alpha.IDs() {
				fmt.Println(id)
			}
		},
	}
}

func newComputeCmd() *cobra.Command {
	var (
		cfgPath string
		input   string
		factors []string
	)
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Evaluate factors over a CSV panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				cfg = config.Load(cfgPath, log.Logger)
			}
			if input != "" {
				cfg.Input.CSV = input
			}
			if len(factors) > 0 {
				cfg.Evaluate.Factors = factors
			}
			return runCompute(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML run configuration")
	cmd.Flags().StringVar(&input, "input", "", "Input CSV (date,symbol,open,high,low,close,volume)")
	cmd.Flags().StringSliceVar(&factors, "factors", nil, "Factor IDs to evaluate (default all)")
	return cmd
}

func runCompute(ctx context.Context, cfg config.Config) error {
	p, ev, err := buildEvaluator(cfg)
	if err != nil {
		return err
	}

	var (
		results  map[alpha.FactorID]*panel.Matrix
		failures map[alpha.FactorID]error
	)
	switch {
	case len(cfg.Evaluate.Factors) > 0:
		results = make(map[alpha.FactorID]*panel.Matrix)
		failures = make(map[alpha.FactorID]error)
		for _, name := range cfg.Evaluate.Factors {
			id := alpha.FactorID(strings.ToLower(strings.TrimSpace(name)))
			m, err := ev.EvaluateOne(id)
			if err != nil {
				failures[id] = err
				continue
			}
			results[id] = m
		}
	case cfg.Evaluate.Parallel:
		results, failures = ev.EvaluateAllParallel(ctx, cfg.Evaluate.Workers)
	default:
		results, failures = ev.EvaluateAll()
	}

	for id, err := range failures {
		log.Warn().Err(err).Str("factor", string(id)).Msg("factor skipped")
	}

	if err := writeOutputs(ctx, cfg, p, results); err != nil {
		return err
	}

	log.Info().
		Int("ok", len(results)).
		Int("failed", len(failures)).
		Int("dates", p.Axes().NumDates()).
		Int("symbols", p.Axes().NumSymbols()).
		Msg("compute finished")
	return nil
}

func newICCmd() *cobra.Command {
	var (
		input   string
		factor  string
		horizon int
	)
	cmd := &cobra.Command{
		Use:   "ic",
		Short: "Information coefficient analysis for one factor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.Input.CSV = input
			cfg.Analysis.Horizon = horizon
			p, ev, err := buildEvaluator(cfg)
			if err != nil {
				return err
			}
			m, err := ev.EvaluateOne(alpha.FactorID(factor))
			if err != nil {
				return err
			}
			fwd, err := analysis.ForwardReturns(p.Close(), cfg.Analysis.Horizon)
			if err != nil {
				return err
			}
			series, err := analysis.IC(m, fwd)
			if err != nil {
				return err
			}
			st := series.Summarize()
			log.Info().
				Str("factor", factor).
				Int("horizon", cfg.Analysis.Horizon).
				Float64("mean_ic", st.Mean).
				Float64("ic_std", st.Std).
				Float64("ir", st.IR).
				Float64("hit_rate", st.HitRate).
				Int("n", st.N).
				Msg("IC summary")
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Input CSV")
	cmd.Flags().StringVar(&factor, "factor", "alpha001", "Factor ID")
	cmd.Flags().IntVar(&horizon, "horizon", 1, "Forward return horizon in days")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newBacktestCmd() *cobra.Command {
	var (
		input  string
		factor string
		topN   int
	)
	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Top-N equal-weight backtest for one factor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.Input.CSV = input
			p, ev, err := buildEvaluator(cfg)
			if err != nil {
				return err
			}
			m, err := ev.EvaluateOne(alpha.FactorID(factor))
			if err != nil {
				return err
			}
			res, err := backtest.Run(m, p.Close(), backtest.Config{TopN: topN})
			if err != nil {
				return err
			}
			log.Info().
				Str("factor", factor).
				Int("top_n", topN).
				Int("days", len(res.DailyReturns)).
				Float64("cumulative_return", res.CumulativeReturn).
				Float64("sharpe", res.Sharpe).
				Float64("hit_rate", res.HitRate).
				Msg("backtest summary")
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Input CSV")
	cmd.Flags().StringVar(&factor, "factor", "alpha001", "Factor ID")
	cmd.Flags().IntVar(&topN, "top-n", 5, "Portfolio size")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newRunsCmd() *cobra.Command {
	var (
		dsn   string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted factor runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dsn, log.Logger)
			if err != nil {
				return err
			}
			defer st.Close()
			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  factors=%d  dates=%d  symbols=%d\n",
					r.RunID, r.CreatedAt.Format(time.RFC3339), r.Factors, r.Dates, r.Symbols)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "Postgres DSN")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	cmd.MarkFlagRequired("dsn")
	return cmd
}

func buildEvaluator(cfg config.Config) (*panel.Panel, *engine.Evaluator, error) {
	if cfg.Input.CSV == "" {
		return nil, nil, fmt.Errorf("no input CSV configured")
	}
	rows, err := loader.ReadFile(cfg.Input.CSV)
	if err != nil {
		return nil, nil, err
	}
	p, err := panel.Build(rows, panel.WithLogger(log.Logger))
	if err != nil {
		return nil, nil, err
	}
	return p, engine.New(p, engine.WithLogger(log.Logger)), nil
}
