package output

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"timecards/report"
)

// DefaultFileName is the name the generated document is saved under.
const DefaultFileName = "timecards.pdf"

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfHeadFill    = props.Color{Red: 26, Green: 188, Blue: 156}
	pdfHeadText    = props.Color{Red: 255, Green: 255, Blue: 255}
)

// PDFWriter renders a report as an A4 landscape PDF.
type PDFWriter struct {
	Layout          LayoutOptions
	TimestampLayout string
}

func NewPDFWriter(layout LayoutOptions, timestampLayout string) *PDFWriter {
	return &PDFWriter{Layout: layout, TimestampLayout: timestampLayout}
}

// Write plans, renders and saves rep to path.
func (w *PDFWriter) Write(path string, rep *report.Report, generatedAt time.Time) error {
	doc, err := w.generate(Plan(rep, w.Layout), generatedAt)
	if err != nil {
		return err
	}
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("save pdf output %s: %w", path, err)
	}
	return nil
}

// Render returns the PDF bytes for layout.
func (w *PDFWriter) Render(layout Layout, generatedAt time.Time) ([]byte, error) {
	doc, err := w.generate(layout, generatedAt)
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func (w *PDFWriter) generate(layout Layout, generatedAt time.Time) (core.Document, error) {
	options := layout.Options
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(options.LeftMargin).
		WithTopMargin(options.TopMargin).
		WithRightMargin(options.RightMargin).
		WithTitle("Timecards", true).
		WithCreationDate(generatedAt).
		Build()

	m := maroto.New(cfg)

	footer := row.New(options.FooterHeight).Add(
		text.NewCol(gridSize, FormatTimestamp(generatedAt, w.TimestampLayout), props.Text{
			Size:  8,
			Top:   1,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)
	if err := m.RegisterFooter(footer); err != nil {
		return nil, fmt.Errorf("register pdf footer: %w", err)
	}

	pages := make([]core.Page, 0, len(layout.Pages))
	for _, planned := range layout.Pages {
		rows := make([]core.Row, 0, len(planned.Blocks))
		for _, block := range planned.Blocks {
			rows = append(rows, blockRow(block))
		}
		pages = append(pages, page.New().Add(rows...))
	}
	m.AddPages(pages...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return doc, nil
}

func blockRow(block Block) core.Row {
	switch block.Kind {
	case BlockEmployeeHeading:
		return row.New(block.Height).Add(text.NewCol(gridSize, block.Text, props.Text{
			Style: fontstyle.Bold,
			Size:  14,
			Top:   2,
			Color: &pdfHeaderColor,
		}))
	case BlockWeekHeading:
		return row.New(block.Height).Add(text.NewCol(gridSize, block.Text, props.Text{
			Size:  12,
			Top:   2,
			Color: &pdfHeaderColor,
		}))
	case BlockTableHeader:
		return tableRow(block, props.Text{Style: fontstyle.Bold, Size: cellFontSize, Color: &pdfHeadText}, &props.Cell{
			BackgroundColor: &pdfHeadFill,
			BorderType:      border.Full,
			BorderColor:     &pdfLineColor,
			BorderThickness: 0.1,
		})
	case BlockTableRow:
		style := props.Text{Size: cellFontSize}
		if block.Placeholder {
			style.Color = &pdfMutedColor
		}
		return tableRow(block, style, &props.Cell{
			BorderType:      border.Full,
			BorderColor:     &pdfLineColor,
			BorderThickness: 0.1,
		})
	case BlockSummary:
		column := col.New(gridSize)
		for i, line := range block.Lines {
			style := props.Text{Size: 10, Top: float64(i)*summaryLineHeight + 1}
			if i == 0 {
				style.Style = fontstyle.Bold
			}
			column.Add(text.New(line, style))
		}
		return row.New(block.Height).Add(column)
	default:
		return row.New(block.Height)
	}
}

func tableRow(block Block, style props.Text, cell *props.Cell) core.Row {
	style.Top = cellPadding
	style.Left = cellPadding
	style.Right = cellPadding

	cols := make([]core.Col, 0, len(block.Cells))
	for i, value := range block.Cells {
		cols = append(cols, text.NewCol(columnSizes[i], value, style).WithStyle(cell))
	}
	return row.New(block.Height).Add(cols...)
}
