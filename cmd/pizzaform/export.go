package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pizzaform/pkg/export"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			cat, err := orch.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := export.Catalog(f, cat); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "catalogo.xlsx", "workbook path")
	return cmd
}
