package main

import (
	"encoding/json"
	"fmt"

	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/store"
	"github.com/spf13/cobra"
)

func (c *cli) storeName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.cfg.Store.Name
}

func newSaveCmd(c *cli) *cobra.Command {
	var (
		values     valueFlags
		labels     bool
		helpArrows bool
	)

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save slider values as a named configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := values.values(c.presets)
			if err != nil {
				return err
			}
			s, err := c.store()
			if err != nil {
				return err
			}

			name := c.storeName(args)
			snap := store.Snapshot{Values: v, ShowLabels: labels, ShowHelp: helpArrows}
			if err := s.Save(name, snap); err != nil {
				return err
			}
			c.log.Info("configuration saved", "name", name, "path", s.Path(name))
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved successfully!")
			return nil
		},
	}

	values.register(cmd)
	cmd.Flags().BoolVar(&labels, "labels", true, "save with object labels shown")
	cmd.Flags().BoolVar(&helpArrows, "help-arrows", true, "save with drag hint arrows shown")
	return cmd
}

func newLoadCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "load [name]",
		Short: "Print a saved configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.store()
			if err != nil {
				return err
			}
			snap, err := s.Load(c.storeName(args))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			current := snap.Values.Map()
			for _, slider := range controls.Sliders() {
				fmt.Fprintf(w, "%-20s %s %s\n", slider.ID, slider.Format(current[slider.ID]), slider.Unit)
			}
			fmt.Fprintf(w, "%-20s %t\n", "showLabels", snap.ShowLabels)
			fmt.Fprintf(w, "%-20s %t\n", "showHelp", snap.ShowHelp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored JSON document")
	return cmd
}
