package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/geometry"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

var errCheckFailed = errors.New("geometry check failed")

type solveReport struct {
	Values       controls.Values  `json:"values"`
	Geometry     *airway.Geometry `json:"geometry,omitempty"`
	DentalDamage bool             `json:"dentalDamage"`
	Contact      bool             `json:"contact"`
	Error        string           `json:"error,omitempty"`
	NonFinite    []string         `json:"nonFinite,omitempty"`
}

func newSolveCmd(c *cli) *cobra.Command {
	var (
		flags  valueFlags
		asJSON bool
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the airway geometry and print a report",
		Long: `Solve the blade and tube geometry for a preset, optionally with individual
sliders overridden, and print the key positions. With --check the command
fails when the blade damages the upper incisor or the inputs are out of
the solvable domain.`,
		Example: `  gointubate solve --preset difficult
  gointubate solve --set tubeAngle=32 --set bladeInsertion=90 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := flags.values(c.presets)
			if err != nil {
				return err
			}

			report := solve(values)
			c.log.Info("solved", "preset", flags.preset, "dentalDamage", report.DentalDamage, "contact", report.Contact)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), flags.preset, report)
			}

			if check && (report.DentalDamage || report.Error != "") {
				return errCheckFailed
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&check, "check", false, "exit non-zero on dental damage or a domain error")
	return cmd
}

func solve(values controls.Values) solveReport {
	g, err := airway.SolveChecked(values.Parameters())
	report := solveReport{
		Values:       values,
		DentalDamage: g.DentalDamage(),
		Contact:      g.Contact(),
		NonFinite:    g.NonFinite(),
	}
	if err != nil {
		report.Error = err.Error()
	}
	// NaN cannot be encoded as JSON
	if len(report.NonFinite) == 0 {
		report.Geometry = &g
	}
	return report
}

func printReport(w io.Writer, preset string, r solveReport) {
	out := termenv.NewOutput(w)
	row := func(name, value string) {
		fmt.Fprintf(w, "%-16s %s\n", name, value)
	}

	row("Preset", preset)
	if g := r.Geometry; g != nil {
		row("Upper incisor", formatPoint(g.UpperIncisor))
		row("Lower incisor", formatPoint(g.LowerIncisor))
		row("Blade tip", formatPoint(g.BladeTip))
		row("Blade clearance", fmt.Sprintf("%.2f mm", g.BladeUpperIncisorDistance))
		if g.Contact() {
			row("Tube contact", fmt.Sprintf("yes, bend %.1f°", geometry.Degrees(g.Bend)))
			if g.Intersection != nil {
				row("Contact point", formatPoint(*g.Intersection))
			}
		} else {
			row("Tube contact", "no")
		}
		row("Tube tip", formatPoint(g.TubeTip))
		row("Tube arc", fmt.Sprintf("%.1f°", geometry.Degrees(g.TubeArcRadians())))
	}

	var status termenv.Style
	switch {
	case r.Error != "":
		status = out.String(r.Error).Foreground(termenv.ANSIRed).Bold()
	case r.DentalDamage:
		status = out.String("DENTAL DAMAGE").Foreground(termenv.ANSIRed).Bold()
	default:
		status = out.String("OK").Foreground(termenv.ANSIGreen)
	}
	row("Status", status.String())
}

func formatPoint(p r2.Vec) string {
	return fmt.Sprintf("(%.2f, %.2f) mm", p.X, p.Y)
}
