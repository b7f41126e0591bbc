package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/render"
	"github.com/philipparndt/gointubate/pkg/store"
	"github.com/spf13/cobra"
)

// renderFlags describe one output image
type renderFlags struct {
	output     string
	format     string
	width      int
	height     int
	labels     bool
	helpArrows bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().StringVar(&f.format, "format", "", "png or svg (default from the output extension)")
	cmd.Flags().IntVar(&f.width, "width", 0, "image width in pixels (default from settings)")
	cmd.Flags().IntVar(&f.height, "height", 0, "image height in pixels (default from settings)")
	cmd.Flags().BoolVar(&f.labels, "labels", true, "draw object labels")
	cmd.Flags().BoolVar(&f.helpArrows, "help-arrows", true, "draw drag hint arrows")
	_ = cmd.MarkFlagRequired("output")
}

func (f *renderFlags) resolveFormat() (string, error) {
	format := strings.ToLower(f.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(f.output)), ".")
	}
	switch format {
	case "png", "svg":
		return format, nil
	case "":
		return "png", nil
	}
	return "", fmt.Errorf("unsupported format %q, want png or svg", format)
}

func (c *cli) size(f *renderFlags) image.Point {
	size := image.Pt(c.cfg.Render.Width, c.cfg.Render.Height)
	if f.width > 0 {
		size.X = f.width
	}
	if f.height > 0 {
		size.Y = f.height
	}
	return size
}

// write renders the snapshot's geometry to the output described by f
func (c *cli) write(f *renderFlags, stdout io.Writer, snap store.Snapshot) error {
	format, err := f.resolveFormat()
	if err != nil {
		return err
	}

	g, err := airway.SolveChecked(snap.Values.Parameters())
	if err != nil {
		c.log.Warn("rendering geometry out of domain", "err", err)
	}
	opts := render.Options{
		ShowLabels:  snap.ShowLabels,
		ShowHelp:    snap.ShowHelp,
		Supersample: c.cfg.Render.Supersample,
	}
	size := c.size(f)

	encode := func(w io.Writer) error {
		if format == "svg" {
			return render.SVG(w, g, opts, c.view(), size)
		}
		return render.PNG(w, g, opts, c.view(), size)
	}

	if f.output == "-" {
		return encode(stdout)
	}

	tmp := f.output + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := encode(file); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, f.output); err != nil {
		os.Remove(tmp)
		return err
	}
	c.log.Info("image written", "file", f.output, "format", format, "width", size.X, "height", size.Y)
	return nil
}

func newRenderCmd(c *cli) *cobra.Command {
	var (
		values valueFlags
		out    renderFlags
		saved  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the airway diagram to PNG or SVG",
		Example: `  gointubate render -o airway.png --preset difficult
  gointubate render -o airway.svg --labels=false --help-arrows=false
  gointubate render -o airway.png --from intubationConfig`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := store.Snapshot{ShowLabels: out.labels, ShowHelp: out.helpArrows}

			if saved != "" {
				s, err := c.store()
				if err != nil {
					return err
				}
				loaded, err := s.Load(saved)
				if err != nil {
					return err
				}
				snap.Values = loaded.Values
				if !cmd.Flags().Changed("labels") {
					snap.ShowLabels = loaded.ShowLabels
				}
				if !cmd.Flags().Changed("help-arrows") {
					snap.ShowHelp = loaded.ShowHelp
				}
				if err := snap.Values.Apply(values.sets); err != nil {
					return err
				}
			} else {
				v, err := values.values(c.presets)
				if err != nil {
					return err
				}
				snap.Values = v
			}

			return c.write(&out, cmd.OutOrStdout(), snap)
		},
	}

	values.register(cmd)
	out.register(cmd)
	cmd.Flags().StringVar(&saved, "from", "", "render a saved configuration instead of a preset")
	cmd.MarkFlagsMutuallyExclusive("from", "preset")
	return cmd
}
