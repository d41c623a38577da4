package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/graphyn-fyne/tokens"
	"github.com/piwi3910/graphyn-fyne/toolkit"
)

// TypographySheet is the name of the workbook sheet holding the mode-invariant tokens.
const TypographySheet = "typography"

// paletteHeaderRow is the 1-based row of the Role/Hex/Swatch header on a palette sheet.
const paletteHeaderRow = 4

// ExportTokenWorkbook writes an XLSX workbook with one sheet per appearance of set, named
// after the appearance, listing every role with its hex value and a filled swatch cell,
// followed by a typography sheet built from state.
func ExportTokenWorkbook(path string, set *tokens.Set, state toolkit.State) error {
	f, err := buildTokenWorkbook(set, state)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// WriteTokenWorkbook writes the workbook produced by ExportTokenWorkbook to w.
func WriteTokenWorkbook(w io.Writer, set *tokens.Set, state toolkit.State) error {
	f, err := buildTokenWorkbook(set, state)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func buildTokenWorkbook(set *tokens.Set, state toolkit.State) (*excelize.File, error) {
	if set == nil || len(set.Themes) == 0 {
		return nil, fmt.Errorf("no token set to export")
	}

	f := excelize.NewFile()
	for i, th := range set.Themes {
		sheet := string(th.Appearance)
		var err error
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sheet)
		} else {
			_, err = f.NewSheet(sheet)
		}
		if err == nil {
			err = writePaletteSheet(f, sheet, th)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write %s sheet: %w", sheet, err)
		}
	}

	if _, err := f.NewSheet(TypographySheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTypographySheet(f, state); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write typography sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writePaletteSheet(f *excelize.File, sheet string, th tokens.Theme) error {
	if err := setRow(f, sheet, 1, "Theme", th.Name); err != nil {
		return err
	}
	if err := setRow(f, sheet, 2, "Radius", th.Radius); err != nil {
		return err
	}
	if err := setRow(f, sheet, paletteHeaderRow, "Role", "Hex", "Swatch"); err != nil {
		return err
	}

	for i, role := range tokens.Roles() {
		row := paletteHeaderRow + 1 + i
		c := th.Colors[role]
		if err := setRow(f, sheet, row, string(role), tokens.Hex(c)); err != nil {
			return err
		}

		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)},
			},
		})
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(3, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "B", 24)
}

func writeTypographySheet(f *excelize.File, state toolkit.State) error {
	rows := [][]interface{}{
		{"Token", "Value"},
		{"Sans font", state.FontFamily},
		{"Mono font", state.MonoFontFamily},
		{"Font size", state.FontSize},
		{"Radius", state.Radius},
		{"Radius (large)", state.RadiusLarge},
		{"Shadows", state.Shadow},
	}
	for i, row := range rows {
		if err := setRow(f, TypographySheet, i+1, row...); err != nil {
			return err
		}
	}
	return f.SetColWidth(TypographySheet, "A", "B", 24)
}

// setRow writes values into consecutive cells of a 1-based row, starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
