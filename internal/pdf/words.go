package pdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Grouping tolerances in points. Runs within lineTolerance vertically share
// a line; a horizontal gap wider than wordGap closes the current word.
const (
	lineTolerance = 3.0
	wordGap       = 3.0
)

// extractWords reads the positioned character runs of the page and groups
// them into words line by line.
func (p *docPage) extractWords() (words []Word, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			words = nil
			err = fmt.Errorf("word extraction failed on page %d: %v", p.number, rec)
		}
	}()

	if p.p.V.Key("Contents").IsNull() {
		return nil, nil
	}

	content := p.p.Content()
	return groupWords(content.Text), nil
}

// groupWords assembles character runs into words, ordered top to bottom
// and left to right.
func groupWords(runs []pdf.Text) []Word {
	if len(runs) == 0 {
		return nil
	}

	ordered := make([]pdf.Text, len(runs))
	copy(ordered, runs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Y > ordered[j].Y
	})

	var words []Word
	for start := 0; start < len(ordered); {
		end := start + 1
		for end < len(ordered) && ordered[end-1].Y-ordered[end].Y <= lineTolerance {
			end++
		}
		line := ordered[start:end]
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].X < line[j].X
		})
		words = appendLineWords(words, line)
		start = end
	}
	return words
}

func appendLineWords(words []Word, line []pdf.Text) []Word {
	var (
		b         strings.Builder
		x0, x1, y float64
	)
	flush := func() {
		if b.Len() > 0 {
			words = append(words, Word{Text: b.String(), X0: x0, X1: x1, Y: y})
			b.Reset()
		}
	}

	for _, run := range line {
		if strings.TrimSpace(run.S) == "" {
			flush()
			continue
		}
		if b.Len() > 0 && run.X-x1 > wordGap {
			flush()
		}
		if b.Len() == 0 {
			x0, x1, y = run.X, run.X+run.W, run.Y
		} else if end := run.X + run.W; end > x1 {
			x1 = end
		}
		b.WriteString(run.S)
	}
	flush()
	return words
}
