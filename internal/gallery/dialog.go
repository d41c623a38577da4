package gallery

import (
	"fmt"
	"io"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/graphyn-fyne/graphyn"
)

// tokenForm edits a copy of a Config. Values are applied only when the form is saved.
type tokenForm struct {
	cfg   graphyn.Config
	items []*widget.FormItem
}

func newTokenForm(cfg graphyn.Config) *tokenForm {
	f := &tokenForm{cfg: cfg}

	// Helper to create a float entry bound to a pointer
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	textEntry := func(val *string) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(*val)
		e.OnChanged = func(text string) {
			*val = text
		}
		return e
	}

	shadowCheck := widget.NewCheck("", func(on bool) {
		f.cfg.Shadow = on
	})
	shadowCheck.SetChecked(f.cfg.Shadow)

	f.items = []*widget.FormItem{
		widget.NewFormItem("Sans Font", textEntry(&f.cfg.FontSans)),
		widget.NewFormItem("Mono Font", textEntry(&f.cfg.FontMono)),
		widget.NewFormItem("Font Size (px)", floatEntry(&f.cfg.FontSize)),
		widget.NewFormItem("Radius (px)", floatEntry(&f.cfg.Radius)),
		widget.NewFormItem("Shadows", shadowCheck),
	}
	return f
}

// showTokenDialog displays the token editor and re-initializes the theme on save.
func (a *App) showTokenDialog() {
	form := newTokenForm(a.config)

	d := dialog.NewForm("Design Tokens", "Apply", "Cancel", form.items,
		func(ok bool) {
			if !ok {
				return
			}
			if err := a.ApplyConfig(form.cfg); err != nil {
				dialog.ShowError(fmt.Errorf("failed to apply tokens: %w", err), a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}

// showExportDialog asks for a destination and writes one export through the dialog's writer.
func (a *App) showExportDialog(fileName string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		if err := saveExport(writer, write); err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Tokens exported to:\n%s", path), a.window)
	}, a.window)
	d.SetFileName(fileName)
	d.Show()
}

// saveExport runs write against w and always closes it. A close error is reported
// when the write itself succeeded.
func saveExport(w io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return write(w)
}
