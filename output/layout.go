package output

import (
	"math"

	"timecards/report"
)

// Geometry in millimetres. Table rows are measured with the font PDFWriter
// renders them in; the other blocks have fixed heights.
const (
	gridSize = 12

	employeeHeadingHeight = 10.0
	weekHeadingHeight     = 8.0
	tableHeaderHeight     = 8.0
	tableGap              = 4.0
	summaryLineHeight     = 6.0
	summaryGap            = 6.0

	cellPadding       = 1.5
	cellFontSize      = 10.0
	tableRowMinHeight = 7.5
)

// columnSizes are the grid widths of TableHeaders; Contractor and Address get
// the extra room.
var columnSizes = []int{2, 3, 1, 3, 2, 1}

type BlockKind int

const (
	BlockEmployeeHeading BlockKind = iota
	BlockWeekHeading
	BlockTableHeader
	BlockTableRow
	BlockSummary
	BlockGap
)

type Block struct {
	Kind        BlockKind
	Height      float64
	Text        string
	Cells       []string
	Lines       []string
	Placeholder bool
}

type Page struct {
	Employee string
	Blocks   []Block
}

func (p Page) Height() float64 {
	height := 0.0
	for _, block := range p.Blocks {
		height += block.Height
	}
	return height
}

type Layout struct {
	Options LayoutOptions
	Pages   []Page
}

type LayoutOptions struct {
	PageWidth    float64
	PageHeight   float64
	TopMargin    float64
	BottomMargin float64
	LeftMargin   float64
	RightMargin  float64
	FooterHeight float64
	DateLayout   string
}

// DefaultLayoutOptions describes an A4 landscape page. The bottom margin is
// the one maroto applies by default.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		PageWidth:    297,
		PageHeight:   210,
		TopMargin:    10,
		BottomMargin: 20.0025,
		LeftMargin:   14,
		RightMargin:  14,
		FooterHeight: 6,
		DateLayout:   DefaultDateLayout,
	}
}

// ContentHeight is the vertical space available for blocks on one page.
func (o LayoutOptions) ContentHeight() float64 {
	return o.PageHeight - o.TopMargin - o.BottomMargin - o.FooterHeight
}

func (o LayoutOptions) ContentWidth() float64 {
	return o.PageWidth - o.LeftMargin - o.RightMargin
}

// Plan lays out rep page by page. Every employee starts on a new page; a week
// table continues on following pages with its header repeated, and a totals
// block that does not fit below its table moves to a new page on its own.
func Plan(rep *report.Report, options LayoutOptions) Layout {
	p := newPlanner(options)
	for _, employee := range rep.Employees {
		p.newPage(employee.Name)
		p.add(Block{Kind: BlockEmployeeHeading, Height: employeeHeadingHeight, Text: "Employee: " + employee.Name})
		for week := range employee.Weeks {
			p.addWeek(week, employee, rep.Windows[week])
		}
	}
	return Layout{Options: options, Pages: p.pages}
}

type planner struct {
	options LayoutOptions
	limit   float64
	measure *textMeasurer
	pages   []Page
	used    float64
}

func newPlanner(options LayoutOptions) *planner {
	return &planner{options: options, limit: options.ContentHeight(), measure: newTextMeasurer()}
}

func (p *planner) newPage(employee string) {
	p.pages = append(p.pages, Page{Employee: employee})
	p.used = 0
}

func (p *planner) current() *Page {
	return &p.pages[len(p.pages)-1]
}

func (p *planner) fits(height float64) bool {
	return p.used+height <= p.limit
}

func (p *planner) add(block Block) {
	page := p.current()
	page.Blocks = append(page.Blocks, block)
	p.used += block.Height
}

// breakIfNeeded starts a new page for the same employee unless height fits or
// the current page is still empty.
func (p *planner) breakIfNeeded(height float64) bool {
	if p.fits(height) || len(p.current().Blocks) == 0 {
		return false
	}
	p.newPage(p.current().Employee)
	return true
}

func (p *planner) addGap(height float64) {
	if p.fits(height) {
		p.add(Block{Kind: BlockGap, Height: height})
	}
}

func (p *planner) addWeek(week int, employee report.Employee, window report.Window) {
	heading := Block{Kind: BlockWeekHeading, Height: weekHeadingHeight, Text: WeekHeading(week, window, p.options.DateLayout)}
	header := Block{Kind: BlockTableHeader, Height: tableHeaderHeight, Cells: TableHeaders}

	rows := make([]Block, 0, len(employee.Weeks[week]))
	for _, entry := range employee.Weeks[week] {
		cells := EntryCells(entry)
		rows = append(rows, Block{
			Kind:        BlockTableRow,
			Height:      p.rowHeight(cells),
			Cells:       cells,
			Placeholder: entry.Placeholder,
		})
	}

	// The heading stays with the table header and its first row.
	lead := heading.Height + header.Height
	if len(rows) > 0 {
		lead += rows[0].Height
	}
	p.breakIfNeeded(lead)
	p.add(heading)
	p.add(header)

	for _, row := range rows {
		if p.breakIfNeeded(row.Height) {
			p.add(header)
		}
		p.add(row)
	}
	p.addGap(tableGap)

	lines := SummaryLines(week, employee.Totals(week))
	summary := Block{Kind: BlockSummary, Height: float64(len(lines)) * summaryLineHeight, Lines: lines}
	p.breakIfNeeded(summary.Height)
	p.add(summary)
	p.addGap(summaryGap)
}

func (p *planner) rowHeight(cells []string) float64 {
	width := p.options.ContentWidth()
	lines := 1
	for i, cell := range cells {
		textWidth := width*float64(columnSizes[i])/gridSize - 2*cellPadding
		if n := p.measure.lineCount(cell, cellFontSize, textWidth); n > lines {
			lines = n
		}
	}
	height := float64(lines)*p.measure.lineHeight(cellFontSize) + 2*cellPadding
	return math.Max(height, tableRowMinHeight)
}
