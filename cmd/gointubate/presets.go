package main

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/spf13/cobra"
)

func newPresetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets and the sliders they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range c.presets.Names() {
				values, err := c.presets.Values(name)
				if err != nil {
					return err
				}
				changes := presetChanges(values)
				if len(changes) == 0 {
					fmt.Fprintf(w, "%-12s defaults\n", name)
					continue
				}
				fmt.Fprintf(w, "%-12s %s\n", name, strings.Join(changes, " "))
			}
			return nil
		},
	}
}

// presetChanges lists id=value for every slider that differs from the
// defaults, in panel order
func presetChanges(values controls.Values) []string {
	defaults := controls.Defaults().Map()
	current := values.Map()

	var changes []string
	for _, s := range controls.Sliders() {
		if current[s.ID] != defaults[s.ID] {
			changes = append(changes, s.ID+"="+s.Format(current[s.ID]))
		}
	}
	return changes
}
