package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCatalogCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch the catalog and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			cat, err := orch.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(cat, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(cat)
			default:
				return fmt.Errorf("catalog: unsupported format %q", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
