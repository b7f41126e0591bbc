package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/mitchellh/go-homedir"
	"github.com/philipparndt/gointubate/internal/app"
	"github.com/philipparndt/gointubate/internal/logx"
	"github.com/philipparndt/gointubate/pkg/config"
	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/render"
	"github.com/philipparndt/gointubate/pkg/store"
	"github.com/philipparndt/gointubate/pkg/viewer"
	"github.com/philipparndt/gointubate/version"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

const noticeDuration = 3 * time.Second

// App is the main window: the airway view and the control panel
type App struct {
	window  fyne.Window
	session *app.Session
	view    *viewer.AirwayView
	log     *slog.Logger

	sliders     map[string]*sliderRow
	labelsCheck *widget.Check
	helpCheck   *widget.Check
	status      *widget.Label
	statusTimer *time.Timer
	syncing     bool
}

// sliderRow is one slider with its value readout
type sliderRow struct {
	def    controls.Slider
	slider *widget.Slider
	value  *widget.Label
}

func main() {
	var (
		configPath     string
		verbose, debug bool
	)

	cmd := &cobra.Command{
		Use:          "gointubate-gui",
		Short:        "Interactive intubation geometry explorer",
		Version:      version.GetFullVersion(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := logx.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			if verbose || debug {
				level = logx.LevelFromFlags(debug, verbose, false)
			}
			log := logx.New(os.Stderr, level)
			return run(cfg, log)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "settings file (default "+config.DefaultPath+")")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log informational messages")
	cmd.Flags().BoolVar(&debug, "vv", false, "log debug messages")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	var st store.Store
	fs, err := store.NewFileStore(cfg.Store.Dir)
	if err != nil {
		log.Warn("falling back to in-memory store", "dir", cfg.Store.Dir, "err", err)
		st = store.NewMemoryStore()
	} else {
		st = fs
	}

	book := controls.NewPresetBook()
	if cfg.Presets.File != "" {
		book, err = readPresets(cfg.Presets.File)
		if err != nil {
			return err
		}
	}

	session := app.NewSession(app.Config{
		Store:     st,
		StoreName: cfg.Store.Name,
		Presets:   book,
		View:      render.View{Factor: cfg.Render.Factor, XOffset: cfg.Render.XOffset, YOffset: cfg.Render.YOffset},
		Logger:    log,
	})
	session.Options.Supersample = cfg.Render.Supersample

	a := fyneapp.NewWithID("io.github.philipparndt.gointubate")
	w := a.NewWindow("GoIntubate - Airway Geometry")

	appInstance := &App{
		window:  w,
		session: session,
		log:     log,
		sliders: make(map[string]*sliderRow),
	}
	appInstance.setupMainUI(image.Pt(cfg.Render.Width, cfg.Render.Height))

	w.Resize(fyne.NewSize(1400, 900))
	w.ShowAndRun()
	return nil
}

func readPresets(path string) (*controls.PresetBook, error) {
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

func (a *App) setupMainUI(sceneSize image.Point) {
	a.view = viewer.NewAirwayView(a.session.Image, sceneSize)
	a.view.SetOnDrag(
		func(p r2.Vec) { a.session.BeginDrag(p) },
		func(p r2.Vec) {
			if a.session.DragTo(p) {
				a.changed()
			}
		},
		a.session.EndDrag,
	)
	a.view.SetOnScroll(func(delta float64, at r2.Vec) {
		a.session.View = a.session.View.Zoom(delta, at)
		a.view.Render()
	})
	a.view.SetOnKey(func(name string) {
		a.handleKey(app.Key{Name: name})
	})
	a.view.SetOnError(func(err error) {
		a.log.Error("render failed", "err", err)
	})

	a.status = widget.NewLabel("")
	a.status.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(widget.NewLabelWithStyle("Parameters", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, def := range controls.Sliders() {
		row := a.newSliderRow(def)
		a.sliders[def.ID] = row
		panel.Add(container.NewBorder(nil, nil, widget.NewLabel(def.Label), row.value))
		panel.Add(row.slider)
	}

	a.labelsCheck = widget.NewCheck("Show labels", func(checked bool) {
		if a.syncing {
			return
		}
		a.session.SetShowLabels(checked)
		a.view.Render()
	})
	a.helpCheck = widget.NewCheck("Show help", func(checked bool) {
		if a.syncing {
			return
		}
		a.session.SetShowHelp(checked)
		a.view.Render()
	})

	titles, byTitle := presetTitles(a.session.Presets())
	var presetSelect *widget.Select
	presetSelect = widget.NewSelect(titles, func(selected string) {
		if a.syncing || selected == "" {
			return
		}
		a.notify(a.session.LoadPreset(byTitle[selected]))
		presetSelect.ClearSelected()
	})
	presetSelect.PlaceHolder = "Load preset"

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag the lower incisor to move the jaw\n" +
			"• Drag left of the upper incisor to move the blade\n" +
			"• Drag right of the upper incisor to rotate the tube\n" +
			"• Arrow keys adjust tube angle and blade insertion\n" +
			"• 1-4 load presets, R resets, Ctrl+S saves, Ctrl+L loads",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel.Add(widget.NewSeparator())
	panel.Add(widget.NewLabel("Display Options:"))
	panel.Add(a.labelsCheck)
	panel.Add(a.helpCheck)
	panel.Add(widget.NewSeparator())
	panel.Add(presetSelect)
	panel.Add(container.NewGridWithColumns(3,
		widget.NewButton("Save", func() { a.notify(a.session.Save()) }),
		widget.NewButton("Load", func() { a.notify(a.session.Load()) }),
		widget.NewButton("Reset", func() {
			a.session.Reset()
			a.changed()
		}),
	))
	panel.Add(widget.NewSeparator())
	panel.Add(instructions)

	infoScroll := container.NewVScroll(panel)
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(
		nil,      // top
		a.status, // bottom
		nil,      // left
		infoScroll,
		a.view,
	)
	a.window.SetContent(content)

	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		a.handleKey(app.Key{Name: "s", Ctrl: true})
	})
	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyL, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		a.handleKey(app.Key{Name: "l", Ctrl: true})
	})
	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		a.handleKey(app.Key{Name: "r", Ctrl: true})
	})

	a.changed()
}

func (a *App) newSliderRow(def controls.Slider) *sliderRow {
	row := &sliderRow{
		def:    def,
		slider: widget.NewSlider(def.Min, def.Max),
		value:  widget.NewLabel(""),
	}
	row.slider.Step = def.Step
	row.slider.OnChanged = func(value float64) {
		if a.syncing {
			return
		}
		if err := a.session.SetValue(def.ID, value); err != nil {
			a.log.Error("slider update failed", "slider", def.ID, "err", err)
			return
		}
		row.value.SetText(def.Format(value) + " " + def.Unit)
		a.view.Render()
	}
	return row
}

func (a *App) handleKey(k app.Key) {
	notice, changed := a.session.HandleKey(k)
	if notice != nil {
		a.notify(*notice)
		return
	}
	if changed {
		a.changed()
	}
}

// notify re-syncs the controls, since loading changes every value, then
// shows errors in a dialog and anything else in the status line
func (a *App) notify(n app.Notice) {
	a.changed()

	if n.IsError() {
		dialog.ShowError(errors.New(n.Message), a.window)
		return
	}

	a.status.SetText(n.Message)
	if n.Kind == app.NoticeSuccess {
		a.status.Importance = widget.SuccessImportance
	} else {
		a.status.Importance = widget.MediumImportance
	}
	a.status.Refresh()

	if a.statusTimer != nil {
		a.statusTimer.Stop()
	}
	a.statusTimer = time.AfterFunc(noticeDuration, func() {
		fyne.Do(func() { a.status.SetText("") })
	})
}

// changed pushes the session state into every control and redraws
func (a *App) changed() {
	a.syncing = true
	defer func() { a.syncing = false }()

	current := a.session.Values.Map()
	for id, row := range a.sliders {
		row.slider.SetValue(current[id])
		row.value.SetText(row.def.Format(current[id]) + " " + row.def.Unit)
	}
	a.labelsCheck.SetChecked(a.session.Options.ShowLabels)
	a.helpCheck.SetChecked(a.session.Options.ShowHelp)
	a.view.Render()
}

// presetTitles capitalises preset names for display and maps them back
func presetTitles(names []string) ([]string, map[string]string) {
	titles := make([]string, 0, len(names))
	byTitle := make(map[string]string, len(names))
	for _, name := range names {
		title := name
		if name != "" {
			title = strings.ToUpper(name[:1]) + name[1:]
		}
		titles = append(titles, title)
		byTitle[title] = name
	}
	return titles, byTitle
}
