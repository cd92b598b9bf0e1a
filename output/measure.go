package output

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// textMeasurer wraps text the way maroto's gofpdf provider does for its
// default Arial font, so planned row heights match rendered ones.
type textMeasurer struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func newTextMeasurer() *textMeasurer {
	pdf := gofpdf.New("L", "mm", "A4", "")
	return &textMeasurer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

// lineHeight is the advance between wrapped lines at size points.
func (m *textMeasurer) lineHeight(size float64) float64 {
	m.setFont(size)
	_, unitSize := m.pdf.GetFontSize()
	return unitSize
}

// lineCount returns how many lines text occupies in a column width mm wide.
// Text that fits stays on one line; otherwise it breaks at spaces.
func (m *textMeasurer) lineCount(text string, size, width float64) int {
	m.setFont(size)
	text = m.translate(text)
	if m.pdf.GetStringWidth(text) < width {
		return 1
	}

	lines := 1
	current := 0.0
	for _, word := range strings.Split(text, " ") {
		wordWidth := m.pdf.GetStringWidth(word + " ")
		if current+wordWidth < width {
			current += wordWidth
			continue
		}
		lines++
		current = wordWidth
	}
	return lines
}

func (m *textMeasurer) setFont(size float64) {
	m.pdf.SetFont("Arial", "", size)
}
