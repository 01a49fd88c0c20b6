package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Document describes one exported session pass.
type Document struct {
	Title     string
	Subtitle  string
	Generated time.Time
	Sections  []Section
}

// WritePDF renders doc as an A4 PDF into w.
func WritePDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, false)
	pdf.SetCreationDate(doc.Generated)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(doc.Subtitle))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated "+doc.Generated.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	for _, sec := range doc.Sections {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(sec.Title))
		pdf.Ln(9)

		pdf.SetFont("Courier", "", 10)
		for _, line := range sec.Lines {
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}

		pdf.SetFont("Helvetica", "I", 8)
		pdf.Cell(0, 6, fmt.Sprintf("Computed in %s seconds.", formatSeconds(sec.Elapsed)))
		pdf.Ln(10)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
