// Package export renders Graphyn design tokens to printable documents.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/graphyn-fyne/tokens"
	"github.com/piwi3910/graphyn-fyne/toolkit"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0

	swatchCols   = 2
	swatchWidth  = 18.0
	swatchHeight = 10.0
	rowHeight    = 14.0

	qrSize = 80.0
)

// ExportTokenSheet writes a style sheet with one page per appearance of set, each listing
// every color role as a swatch, followed by a page with the typography and radius tokens
// of state and a QR code of the token set.
func ExportTokenSheet(path string, set *tokens.Set, state toolkit.State) error {
	pdf, err := buildTokenSheet(set, state)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WriteTokenSheet writes the sheet produced by ExportTokenSheet to w.
func WriteTokenSheet(w io.Writer, set *tokens.Set, state toolkit.State) error {
	pdf, err := buildTokenSheet(set, state)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildTokenSheet(set *tokens.Set, state toolkit.State) (*fpdf.Fpdf, error) {
	if set == nil || len(set.Themes) == 0 {
		return nil, fmt.Errorf("no token set to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(set.Name+" design tokens", true)

	for _, th := range set.Themes {
		pdf.AddPage()
		renderPalettePage(pdf, th)
	}

	pdf.AddPage()
	y := renderTypographyPage(pdf, set.Name, state)
	if err := renderDocumentQR(pdf, set, y+10); err != nil {
		return nil, err
	}
	return pdf, pdf.Error()
}

// renderPalettePage draws the swatch grid of one appearance on the current page.
func renderPalettePage(pdf *fpdf.Fpdf, th tokens.Theme) {
	bg := th.Colors[tokens.Background]
	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.Rect(0, 0, pageWidth, pageHeight, "F")

	fg := th.Colors[tokens.Foreground]
	pdf.SetTextColor(int(fg.R), int(fg.G), int(fg.B))
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, th.Name, "", 0, "L", false, 0, "")

	border := th.Colors[tokens.Border]
	colWidth := (pageWidth - marginLeft - marginRight) / swatchCols
	top := marginTop + headerHeight + 6

	for i, role := range tokens.Roles() {
		c := th.Colors[role]
		x := marginLeft + float64(i%swatchCols)*colWidth
		y := top + float64(i/swatchCols)*rowHeight

		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.SetDrawColor(int(border.R), int(border.G), int(border.B))
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, y, swatchWidth, swatchHeight, "FD")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(x+swatchWidth+3, y)
		pdf.CellFormat(colWidth-swatchWidth-3, 5, string(role), "", 0, "L", false, 0, "")
		pdf.SetFont("Courier", "", 9)
		pdf.SetXY(x+swatchWidth+3, y+5)
		pdf.CellFormat(colWidth-swatchWidth-3, 5, tokens.Hex(c), "", 0, "L", false, 0, "")
	}

	if th.Radius > 0 {
		scale := th.RadiusScale()
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(marginLeft, pageHeight-marginBottom-5)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5,
			fmt.Sprintf("Radius scale: sm %.0f / md %.0f / lg %.0f / xl %.0f", scale.Sm, scale.Md, scale.Lg, scale.Xl),
			"", 0, "L", false, 0, "")
	}
}

// renderTypographyPage draws the mode-invariant tokens as a two-column table and
// returns the y position below it.
func renderTypographyPage(pdf *fpdf.Fpdf, name string, state toolkit.State) float64 {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, name+" typography and shape", "", 0, "L", false, 0, "")

	rows := [][2]string{
		{"Sans font", state.FontFamily},
		{"Mono font", state.MonoFontFamily},
		{"Font size", fmt.Sprintf("%.1f px", state.FontSize)},
		{"Radius", fmt.Sprintf("%.1f px", state.Radius)},
		{"Radius (large)", fmt.Sprintf("%.1f px", state.RadiusLarge)},
		{"Shadows", fmt.Sprintf("%t", state.Shadow)},
	}

	labelWidth := 50.0
	valueWidth := pageWidth - marginLeft - marginRight - labelWidth
	y := marginTop + headerHeight + 6
	for i, row := range rows {
		fill := i%2 == 0
		pdf.SetFillColor(244, 244, 245)
		pdf.SetXY(marginLeft, y)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, 8, row[0], "", 0, "L", fill, 0, "")
		pdf.SetFont("Courier", "", 10)
		pdf.CellFormat(valueWidth, 8, row[1], "", 0, "L", fill, 0, "")
		y += 8
	}
	return y
}

// renderDocumentQR prints the whole token set as a QR code, so a printed sheet can be
// scanned back into a document Parse accepts.
func renderDocumentQR(pdf *fpdf.Fpdf, set *tokens.Set, y float64) error {
	doc, err := tokens.Encode(set)
	if err != nil {
		return fmt.Errorf("failed to encode token set: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(doc), qrcode.Medium, 1024)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5,
		fmt.Sprintf("Token-set document, %d bytes", len(doc)), "", 0, "L", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("tokenset_qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("tokenset_qr", marginLeft, y+7, qrSize, qrSize, false, opts, 0, "")
	return nil
}
