package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"alphapanel/internal/alpha"
	"alphapanel/internal/config"
	"alphapanel/internal/export"
	"alphapanel/internal/panel"
	"alphapanel/internal/store"
)

// writeOutputs fans results out to whichever sinks the config enables.
func writeOutputs(ctx context.Context, cfg config.Config, p *panel.Panel, results map[alpha.FactorID]*panel.Matrix) error {
	if len(results) == 0 {
		return fmt.Errorf("no factors evaluated successfully")
	}

	if cfg.Output.Excel != "" {
		if err := export.WriteWorkbook(cfg.Output.Excel, results); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.Excel).Msg("wrote workbook")
	}

	if cfg.Output.CSV != "" {
		f, err := os.Create(cfg.Output.CSV)
		if err != nil {
			return fmt.Errorf("create %s: %w", cfg.Output.CSV, err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, results); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.CSV).Msg("wrote csv")
	}

	if cfg.Store.DSN != "" {
		st, err := store.Open(cfg.Store.DSN, log.Logger)
		if err != nil {
			return err
		}
		defer st.Close()
		runID, err := st.SaveRun(ctx, p.Axes(), results)
		if err != nil {
			return err
		}
		log.Info().Str("run_id", runID.String()).Msg("persisted run")
	}

	return nil
}
