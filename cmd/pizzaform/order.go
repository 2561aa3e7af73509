package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pizzaform/pkg/export"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/renderers/tui"
)

func newOrderCmd(a *app) *cobra.Command {
	var receiptsPath string

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place an order from the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			session, err := tui.NewSession(orch,
				tui.WithFields(a.cfg.Fields),
				tui.WithRenderOptions(a.renderOptions()),
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
			)
			if err != nil {
				return err
			}
			runErr := session.Run(cmd.Context())
			if errors.Is(runErr, tui.ErrAborted) {
				runErr = nil
			}
			if receiptsPath != "" {
				if err := writeReceipts(cmd.OutOrStdout(), receiptsPath, session.Receipts(), a.cfg.Fields); err != nil {
					return errors.Join(runErr, err)
				}
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&receiptsPath, "receipts", "", "write the session's accepted orders to this xlsx workbook")
	return cmd
}

// writeReceipts saves receipts to path. Nothing is written for an empty
// session.
func writeReceipts(out io.Writer, path string, receipts []order.Receipt, fields []order.Field) error {
	if len(receipts) == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("receipts: %w", err)
	}
	if err := export.Receipts(f, receipts, fields); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("receipts: %w", err)
	}
	fmt.Fprintf(out, "%d orders written to %s\n", len(receipts), path)
	return nil
}
