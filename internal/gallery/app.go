package gallery

import (
	"fmt"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/graphyn-fyne/graphyn"
	"github.com/piwi3910/graphyn-fyne/internal/export"
	"github.com/piwi3910/graphyn-fyne/tokens"
	"github.com/piwi3910/graphyn-fyne/toolkit"
)

// App holds the gallery state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	host   *toolkit.Host
	mode   graphyn.Mode
	config graphyn.Config
	tabs   *container.AppTabs

	// UI references for dynamic updates
	toggle          *modeToggle
	modeLabel       *widget.Label
	swatchContainer *fyne.Container
	tokenContainer  *fyne.Container
}

// NewApp creates a gallery that themes window through host.
func NewApp(application fyne.App, window fyne.Window, host *toolkit.Host, mode graphyn.Mode, cfg graphyn.Config) *App {
	return &App{
		app:    application,
		window: window,
		host:   host,
		mode:   mode,
		config: cfg,
	}
}

// Mode returns the mode currently shown.
func (a *App) Mode() graphyn.Mode {
	return a.mode
}

// Config returns the configuration last applied.
func (a *App) Config() graphyn.Config {
	return a.config
}

// Apply runs the full theme initialization with the current mode and configuration.
func (a *App) Apply() error {
	if err := graphyn.InitWithConfig(a.host, a.window, a.mode, a.config); err != nil {
		return err
	}
	a.refresh()
	return nil
}

// ApplyConfig replaces the configuration and re-initializes the theme.
func (a *App) ApplyConfig(cfg graphyn.Config) error {
	a.config = cfg
	return a.Apply()
}

// SetMode switches modes without re-applying the configuration.
func (a *App) SetMode(m graphyn.Mode) error {
	var err error
	switch m {
	case graphyn.Light:
		err = graphyn.SetLight(a.host, a.window)
	case graphyn.Dark:
		err = graphyn.SetDark(a.host, a.window)
	default:
		err = fmt.Errorf("unknown mode %v", m)
	}
	if err != nil {
		return err
	}
	a.mode = m
	a.refresh()
	return nil
}

// ToggleMode flips between light and dark.
func (a *App) ToggleMode() error {
	if a.mode == graphyn.Light {
		return a.SetMode(graphyn.Dark)
	}
	return a.SetMode(graphyn.Light)
}

// WriteTokenSheet writes the built-in palettes and the current global tokens as a PDF.
func (a *App) WriteTokenSheet(w io.Writer) error {
	g := a.host.Global()
	if g == nil {
		return toolkit.ErrNoGlobalTheme
	}
	return export.WriteTokenSheet(w, a.host.TokenSet(), g.Snapshot())
}

// WriteTokenWorkbook writes the same tokens as an XLSX workbook.
func (a *App) WriteTokenWorkbook(w io.Writer) error {
	g := a.host.Global()
	if g == nil {
		return toolkit.ErrNoGlobalTheme
	}
	return export.WriteTokenWorkbook(w, a.host.TokenSet(), g.Snapshot())
}

// SetupMenus creates the native menu bar for the gallery.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Copy Theme JSON", func() {
			a.app.Clipboard().SetContent(graphyn.ThemeJSON())
		}),
		fyne.NewMenuItem("Export Token Sheet (PDF)...", func() {
			a.showExportDialog("graphyn-tokens.pdf", a.WriteTokenSheet)
		}),
		fyne.NewMenuItem("Export Token Workbook (XLSX)...", func() {
			a.showExportDialog("graphyn-tokens.xlsx", a.WriteTokenWorkbook)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Light Mode", func() {
			a.showError(a.SetMode(graphyn.Light))
		}),
		fyne.NewMenuItem("Dark Mode", func() {
			a.showError(a.SetMode(graphyn.Dark))
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Mode", func() {
			a.showError(a.ToggleMode())
		}),
	)

	tokensMenu := fyne.NewMenu("Tokens",
		fyne.NewMenuItem("Edit Tokens...", func() {
			a.showTokenDialog()
		}),
		fyne.NewMenuItem("Reset to Defaults", func() {
			a.showError(a.ApplyConfig(graphyn.DefaultConfig()))
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, tokensMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Graphyn Gallery",
		"Graphyn Mono design system for Fyne\n\n"+
			"Lavender primary and accent colors, Host Grotesk and Geist Mono type,\n"+
			"sharp corners and a flat, shadowless surface.",
		a.window,
	)
}

func (a *App) showError(err error) {
	if err != nil {
		dialog.ShowError(err, a.window)
	}
}

// Build constructs the gallery UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.toggle = newModeToggle(func() {
		a.showError(a.ToggleMode())
	})
	a.modeLabel = widget.NewLabel("")

	toolbar := container.NewHBox(
		widget.NewLabelWithStyle("Graphyn", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		a.modeLabel,
		a.toggle,
	)

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Components", a.buildComponentsPanel()),
		container.NewTabItem("Colors", a.buildColorsPanel()),
		container.NewTabItem("Tokens", a.buildTokensPanel()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.refresh()
	return container.NewBorder(toolbar, nil, nil, nil, a.tabs)
}

// ─── Components Panel ──────────────────────────────────────

func (a *App) buildComponentsPanel() fyne.CanvasObject {
	primary := widget.NewButton("Primary", func() {})
	primary.Importance = widget.HighImportance
	secondary := widget.NewButton("Secondary", func() {})
	destructive := widget.NewButton("Delete", func() {})
	destructive.Importance = widget.DangerImportance
	disabled := widget.NewButton("Disabled", func() {})
	disabled.Disable()

	email := widget.NewEntry()
	email.SetPlaceHolder("you@example.com")
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("Password")
	code := widget.NewMultiLineEntry()
	code.TextStyle = fyne.TextStyle{Monospace: true}
	code.SetText("graphyn.Init(host, w, graphyn.Dark)")

	progress := widget.NewProgressBar()
	progress.SetValue(0.6)

	card := widget.NewCard("Card", "Surfaces use the card and border roles",
		container.NewVBox(
			widget.NewCheck("Enable notifications", nil),
			widget.NewRadioGroup([]string{"Comfortable", "Compact"}, nil),
			widget.NewSelect([]string{"Host Grotesk", "Geist Mono"}, nil),
		),
	)

	return container.NewVScroll(container.NewVBox(
		sectionHeader("Buttons"),
		container.NewHBox(primary, secondary, destructive, disabled),
		sectionHeader("Inputs"),
		email,
		password,
		code,
		sectionHeader("Feedback"),
		progress,
		widget.NewProgressBarInfinite(),
		card,
	))
}

func sectionHeader(text string) fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
	)
}

// ─── Colors Panel ──────────────────────────────────────────

func (a *App) buildColorsPanel() fyne.CanvasObject {
	a.swatchContainer = container.NewGridWithColumns(2)
	return container.NewVScroll(a.swatchContainer)
}

func (a *App) refreshSwatches() {
	if a.swatchContainer == nil {
		return
	}
	a.swatchContainer.RemoveAll()

	g := a.host.Global()
	if g == nil {
		a.swatchContainer.Add(widget.NewLabel("Theme not initialized yet."))
		return
	}
	for _, role := range tokens.Roles() {
		a.swatchContainer.Add(newSwatch(role, g.Colors[role]))
	}
}

func newSwatch(role tokens.Role, c color.NRGBA) fyne.CanvasObject {
	rect := canvas.NewRectangle(c)
	rect.StrokeColor = theme.Color(theme.ColorNameSeparator)
	rect.StrokeWidth = 1
	rect.SetMinSize(fyne.NewSize(48, 32))

	return container.NewBorder(nil, nil, rect, nil,
		container.NewVBox(
			widget.NewLabelWithStyle(string(role), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle(tokens.Hex(c), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
		),
	)
}

// ─── Tokens Panel ──────────────────────────────────────────

func (a *App) buildTokensPanel() fyne.CanvasObject {
	a.tokenContainer = container.NewVBox()

	editBtn := widget.NewButtonWithIcon("Edit Tokens", theme.DocumentCreateIcon(), func() {
		a.showTokenDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Design Tokens", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			editBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.tokenContainer),
	)
}

// tokenRows describes the global theme as name/value pairs.
func (a *App) tokenRows() [][2]string {
	g := a.host.Global()
	if g == nil {
		return nil
	}
	scale := tokens.ScaleFromBase(float64(g.Radius))
	fonts := "none"
	if fams := a.host.Fonts().Families(); len(fams) > 0 {
		fonts = fmt.Sprint(fams)
	}
	return [][2]string{
		{"Theme", g.Name},
		{"Mode", a.mode.String()},
		{"Sans font", g.FontFamily},
		{"Mono font", g.MonoFontFamily},
		{"Font size", fmt.Sprintf("%.1f", g.FontSize)},
		{"Radius", fmt.Sprintf("%.1f", g.Radius)},
		{"Radius (large)", fmt.Sprintf("%.1f", g.RadiusLarge)},
		{"Radius scale", fmt.Sprintf("sm %.0f · md %.0f · lg %.0f · xl %.0f", scale.Sm, scale.Md, scale.Lg, scale.Xl)},
		{"Shadow", fmt.Sprintf("%t", g.Shadow)},
		{"Bundled fonts", fonts},
	}
}

func (a *App) refreshTokens() {
	if a.tokenContainer == nil {
		return
	}
	a.tokenContainer.RemoveAll()

	rows := a.tokenRows()
	if len(rows) == 0 {
		a.tokenContainer.Add(widget.NewLabel("Theme not initialized yet."))
		return
	}
	for _, row := range rows {
		a.tokenContainer.Add(container.NewGridWithColumns(2,
			widget.NewLabel(row[0]),
			widget.NewLabelWithStyle(row[1], fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
		))
	}
}

func (a *App) refresh() {
	if a.toggle != nil {
		a.toggle.update(a.mode)
	}
	if a.modeLabel != nil {
		a.modeLabel.SetText(fmt.Sprintf("%s mode", a.mode))
	}
	a.refreshSwatches()
	a.refreshTokens()
}
