package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "pizzaform",
		Short: "Pizza order form server and terminal client",
		Long: `pizzaform serves a pizza order form backed by a size and ingredient
catalog (datos.json), validates orders and shows their total.

Run "pizzaform serve" for the web form or "pizzaform order" to order from
the terminal.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.source, "source", "", "catalog file path or URL (overrides config)")
	flags.StringVar(&a.locale, "locale", "", "locale for messages and labels (overrides config)")

	root.AddCommand(
		newServeCmd(a),
		newOrderCmd(a),
		newCatalogCmd(a),
		newExportCmd(a),
	)
	return root
}
