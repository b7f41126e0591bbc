package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/philipparndt/gointubate/internal/logx"
	"github.com/philipparndt/gointubate/pkg/config"
	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/render"
	"github.com/philipparndt/gointubate/pkg/store"
	"github.com/philipparndt/gointubate/version"
	"github.com/spf13/cobra"
)

// cli carries the global flags and what is built from them before any
// subcommand runs
type cli struct {
	configPath  string
	verbose     bool
	veryVerbose bool
	quiet       bool

	cfg     config.Config
	log     *slog.Logger
	presets *controls.PresetBook
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "gointubate",
		Short: "Model laryngoscope blade and endotracheal tube placement",
		Long: `gointubate solves the 2D geometry of a laryngoscope blade and an
endotracheal tube in the upper airway. It reports the tube path, renders
annotated diagrams and warns when the blade presses on the upper incisor.`,
		Version:           version.GetFullVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "settings file (default "+config.DefaultPath+")")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&c.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&c.quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(
		newSolveCmd(c),
		newRenderCmd(c),
		newPresetsCmd(c),
		newSaveCmd(c),
		newLoadCmd(c),
		newWatchCmd(c),
		newConfigCmd(c),
		newVersionCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := logx.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if c.veryVerbose || c.verbose || c.quiet {
		level = logx.LevelFromFlags(c.veryVerbose, c.verbose, c.quiet)
	}
	c.log = logx.New(cmd.ErrOrStderr(), level)

	c.presets, err = loadPresetBook(cfg.Presets.File)
	if err != nil {
		return err
	}
	c.log.Debug("settings loaded", "config", c.configPath, "presets", len(c.presets.Names()))
	return nil
}

func loadPresetBook(path string) (*controls.PresetBook, error) {
	if path == "" {
		return controls.NewPresetBook(), nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to open presets: %w", err)
	}
	defer f.Close()
	return controls.LoadPresets(f)
}

func (c *cli) store() (*store.FileStore, error) {
	return store.NewFileStore(c.cfg.Store.Dir)
}

func (c *cli) view() render.View {
	return render.View{
		Factor:  c.cfg.Render.Factor,
		XOffset: c.cfg.Render.XOffset,
		YOffset: c.cfg.Render.YOffset,
	}
}

// valueFlags selects the slider values a command works on
type valueFlags struct {
	preset string
	sets   []string
}

func (f *valueFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "normal", "preset to start from")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "override a slider as id=value (repeatable)")
}

func (f *valueFlags) values(book *controls.PresetBook) (controls.Values, error) {
	values, err := book.Values(f.preset)
	if err != nil {
		return controls.Values{}, err
	}
	if err := values.Apply(f.sets); err != nil {
		return controls.Values{}, err
	}
	return values, nil
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "gointubate", info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the build metadata as JSON")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
