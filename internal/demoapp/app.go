// Package demoapp wires the knot slider widgets, presets and configuration
// together into the knotslider demo window.
package demoapp

import (
	"context"
	"errors"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	config "github.com/edward-ap/knotslider/internal/config"
	"github.com/edward-ap/knotslider/internal/preset"
	ui "github.com/edward-ap/knotslider/internal/ui"
)

// Options are the command line overrides.
type Options struct {
	// PresetsFile is a TOML or JSON preset file merged into the bank.
	PresetsFile string
	// Watch reloads the config file when it changes on disk.
	Watch bool
}

// App owns the fyne application, the main window and every slider.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config
	opts   Options

	master          *ui.KnotSlider
	masterReadout   *ui.ReadoutController
	masterIndicator *ui.DragIndicator
	masterToggles   struct {
		snapping, disabled, padding *widget.Check
	}

	bank         *preset.Bank
	presetsPath  string
	filePresets  []preset.Preset
	bankSliders  []*ui.KnotSlider
	bankSilent   bool
	presetSelect *widget.Select
	snapCheck    *widget.Check

	cancelWatch context.CancelFunc
}

// NewApp loads the configuration and builds the window.
func NewApp(opts Options) *App {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
		cfg = config.Default()
	}
	if cfg.TraceLog {
		SetTraceLogEnabled(true)
	}
	return newApp(app.NewWithID(config.AppID), cfg, opts)
}

func newApp(fa fyne.App, cfg *config.Config, opts Options) *App {
	a := &App{fa: fa, config: cfg, opts: opts, bank: preset.NewBank()}
	a.loadPresets()
	a.buildUI()
	return a
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	if a.opts.Watch {
		a.startWatch()
	}
	a.w.ShowAndRun()
}

func (a *App) buildUI() {
	ui.UseKnotTheme(a.config.KnotScale)
	a.w = a.fa.NewWindow("Knot Slider")
	a.w.SetContent(container.NewBorder(a.buildMasterRow(), a.buildBankFooter(), nil, nil, a.buildBank()))
	a.w.Resize(fyne.NewSize(float32(a.config.WindowW), float32(a.config.WindowH)))
	a.w.SetCloseIntercept(func() {
		a.shutdown()
		a.w.Close()
	})
}

func (a *App) buildMasterRow() fyne.CanvasObject {
	settings := a.config.Master
	a.master = ui.NewKnotSlider(settings.SliderConfig())
	valueLabel := widget.NewLabel("")
	a.masterReadout = ui.NewReadoutController(valueLabel, settings.Step, "%")
	a.masterReadout.SetValue(a.master.Value())
	a.masterIndicator = ui.NewDragIndicator(10)

	a.master.OnChanged = func(v float64) {
		a.masterReadout.SetValue(v)
		a.config.Master.Value = v
	}
	a.master.OnDragEnd = func(v float64) {
		log.Printf("master released at %v", v)
	}
	a.masterIndicator.Track(a.master)

	a.masterToggles.snapping = widget.NewCheck("Snap", func(on bool) {
		a.config.Master.Snapping = a.master.SetSnapping(on)
	})
	a.masterToggles.snapping.SetChecked(settings.Snapping)
	a.masterToggles.padding = widget.NewCheck("Tap nudges", func(on bool) {
		a.config.Master.PaddingMode = a.master.SetPaddingMode(on, a.config.Master.PaddingStep)
	})
	a.masterToggles.padding.SetChecked(settings.PaddingMode)
	a.masterToggles.disabled = widget.NewCheck("Disabled", func(on bool) {
		if on {
			a.master.Disable()
		} else {
			a.master.Enable()
		}
		a.config.Master.Disabled = a.master.Disabled()
		a.masterIndicator.Update(a.master)
	})
	a.masterToggles.disabled.SetChecked(settings.Disabled)

	left := container.NewHBox(widget.NewLabel("Master"), a.masterIndicator.CanvasObject())
	right := container.NewHBox(valueLabel, a.masterToggles.snapping, a.masterToggles.padding, a.masterToggles.disabled)
	return container.NewBorder(nil, nil, left, right, a.master)
}

func (a *App) buildBank() fyne.CanvasObject {
	a.bankSliders = make([]*ui.KnotSlider, preset.BankSize)
	cols := make([]fyne.CanvasObject, preset.BankSize)

	for i := range a.bankSliders {
		idx := i
		s := ui.NewVerticalKnotSlider(config.BankMin, config.BankMax, config.BankStep)
		s.SetSnapping(a.config.BankSnapping)
		valueLabel := widget.NewLabel("")
		valueLabel.Alignment = fyne.TextAlignCenter
		readout := ui.NewReadoutController(valueLabel, config.BankStep, "dB")
		readout.SetValue(s.Value())
		s.OnChanged = func(v float64) {
			readout.SetValue(v)
			if a.bankSilent {
				return
			}
			a.bank.SetValue(idx, v)
			a.markManual()
		}
		a.bankSliders[i] = s

		caption := ui.NewAxisLabel(bandCaption(i))
		cols[i] = container.NewBorder(valueLabel, nil, caption.CanvasObject(), nil, s)
	}

	a.restoreBank()
	return container.NewGridWithColumns(preset.BankSize, cols...)
}

func (a *App) buildBankFooter() fyne.CanvasObject {
	options := a.bank.Names()
	if a.config.BankPreset == presetNameManual {
		options = append(options, presetNameManual)
	}
	a.presetSelect = widget.NewSelect(options, func(name string) {
		if name == presetNameManual {
			return
		}
		a.applyPreset(name)
	})
	a.presetSelect.SetSelected(a.config.BankPreset)

	a.snapCheck = widget.NewCheck("Snap bank", func(on bool) {
		a.config.BankSnapping = on
		for _, s := range a.bankSliders {
			s.SetSnapping(on)
		}
	})
	a.snapCheck.SetChecked(a.config.BankSnapping)

	save := widget.NewButton("Save preset", func() { a.promptSavePreset() })
	reset := widget.NewButton("Reset", func() {
		first := a.bank.Presets[0].Name
		a.applyPreset(first)
		a.presetSelect.SetSelected(first)
	})
	return container.NewHBox(widget.NewLabel("Preset"), a.presetSelect, a.snapCheck, save, reset)
}

// loadPresets merges custom presets from the config and the presets file.
func (a *App) loadPresets() {
	a.bank.Merge(presetsFromConfig(a.config))
	path := a.opts.PresetsFile
	if path == "" {
		path = a.config.PresetsFile
	}
	if path == "" {
		return
	}
	extra, err := preset.LoadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// created by the first saved preset
		a.presetsPath = path
		return
	case err != nil:
		log.Printf("presets: %v", err)
		return
	}
	a.presetsPath = path
	a.filePresets = extra
	a.bank.Merge(extra)
}

// exportPreset writes p into the presets file, when one is in use.
func (a *App) exportPreset(p preset.Preset) {
	if a.presetsPath == "" {
		return
	}
	a.filePresets = preset.Upsert(a.filePresets, p)
	if err := preset.SaveFile(a.presetsPath, a.filePresets); err != nil {
		log.Printf("presets export: %v", err)
	}
}

// restoreBank applies the persisted bank values, or the persisted preset when
// no values were saved.
func (a *App) restoreBank() {
	if len(a.config.BankValues) == 0 {
		if _, ok := a.bank.Select(a.config.BankPreset); !ok {
			a.bank.Select(a.bank.Presets[0].Name)
		}
		a.config.BankPreset = a.bank.Current.Name
	} else {
		a.bank.Current = preset.ExtractFromValues(a.config.BankValues)
		a.bank.Current.Name = a.config.BankPreset
	}
	a.pushBankToSliders()
}

// applyPreset selects a preset and moves every bank slider to it.
func (a *App) applyPreset(name string) {
	if _, ok := a.bank.Select(name); !ok {
		return
	}
	a.config.BankPreset = name
	a.pushBankToSliders()
}

// pushBankToSliders writes the current preset into the widgets without
// treating the moves as manual edits.
func (a *App) pushBankToSliders() {
	values := make([]float64, len(a.bankSliders))
	preset.ApplyToValues(a.bank.Current, values)
	a.bankSilent = true
	for i, s := range a.bankSliders {
		values[i] = s.SetValue(values[i])
	}
	a.bankSilent = false
	a.bank.Current.Values = values
	a.config.BankValues = append(a.config.BankValues[:0], values...)
}

func (a *App) markManual() {
	a.config.BankPreset = presetNameManual
	a.config.BankValues = append(a.config.BankValues[:0], a.bank.Current.Values...)
	if a.presetSelect != nil && a.presetSelect.Selected != presetNameManual {
		a.presetSelect.Options = append(a.bank.Names(), presetNameManual)
		a.presetSelect.SetSelected(presetNameManual)
	}
}

func (a *App) promptSavePreset() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Preset name")
	dialog.ShowForm("Save preset", "Save", "Cancel", []*widget.FormItem{widget.NewFormItem("Name", entry)}, func(ok bool) {
		if ok {
			a.savePreset(entry.Text)
		}
	}, a.w)
}

// savePreset stores the current bank values as a custom preset.
func (a *App) savePreset(name string) bool {
	p := preset.ExtractFromValues(a.bank.Current.Values)
	p.Name = sanitizePresetName(name)
	if p.Name == "" || p.Name == presetNameManual {
		return false
	}
	a.bank.Merge([]preset.Preset{p})
	a.exportPreset(p)
	a.config.CustomPresets = upsertPresetData(a.config.CustomPresets, p)
	a.config.BankPreset = p.Name
	a.presetSelect.Options = a.bank.Names()
	a.presetSelect.SetSelected(p.Name)
	if err := a.config.Save(); err != nil {
		log.Printf("config save: %v", err)
	}
	return true
}

func (a *App) startWatch() {
	path, err := config.ConfigPath()
	if err != nil {
		log.Printf("config watch: %v", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelWatch = cancel
	if err := config.Watch(ctx, path, func(cfg *config.Config) {
		ui.CallOnMain(func() { a.applyExternalConfig(cfg) })
	}); err != nil {
		log.Printf("config watch: %v", err)
	}
}

// applyExternalConfig follows edits made to the config file while running.
func (a *App) applyExternalConfig(cfg *config.Config) {
	m := &a.config.Master
	// Widen before narrowing so the intermediate range never inverts.
	if cfg.Master.Min < m.Min {
		m.Min = a.master.SetMin(cfg.Master.Min)
		m.Max = a.master.SetMax(cfg.Master.Max)
	} else {
		m.Max = a.master.SetMax(cfg.Master.Max)
		m.Min = a.master.SetMin(cfg.Master.Min)
	}
	m.Step = a.master.SetStep(cfg.Master.Step)
	a.masterReadout.SetStep(m.Step)
	m.Value = a.master.SetValue(cfg.Master.Value)
	a.masterToggles.snapping.SetChecked(cfg.Master.Snapping)
	a.masterToggles.padding.SetChecked(cfg.Master.PaddingMode)
	a.masterToggles.disabled.SetChecked(cfg.Master.Disabled)
	a.snapCheck.SetChecked(cfg.BankSnapping)
	if cfg.BankPreset != a.config.BankPreset {
		a.presetSelect.SetSelected(cfg.BankPreset)
	}
}

func (a *App) shutdown() {
	if a.cancelWatch != nil {
		a.cancelWatch()
		a.cancelWatch = nil
	}
	if a.w != nil {
		sz := a.w.Canvas().Size()
		a.config.WindowW, a.config.WindowH = int(sz.Width), int(sz.Height)
	}
	if err := a.config.Save(); err != nil {
		log.Printf("config save: %v", err)
	}
	a.master.Destroy()
	for _, s := range a.bankSliders {
		s.Destroy()
	}
}
