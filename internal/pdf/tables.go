package pdf

import (
	"math"
	"sort"
	"strings"
)

// Table detection thresholds in points.
const (
	cellGap         = 15.0 // horizontal gap separating cells within a row
	columnTolerance = 10.0 // x distance within which cell starts share a column
	minTableRows    = 2
	minTableCols    = 2
)

type tableRow struct {
	cells []tableCell
}

type tableCell struct {
	text string
	x0   float64
}

// detectTables finds runs of consecutive multi-cell rows whose cells align
// into at least two columns and emits one grid per run. A column position
// with no cell in a row yields a nil cell.
func detectTables(words []Word) []Grid {
	rows := clusterRows(words)

	var grids []Grid
	var run []tableRow
	flush := func() {
		if len(run) >= minTableRows {
			if g := buildGrid(run); g != nil {
				grids = append(grids, g)
			}
		}
		run = nil
	}

	for _, row := range rows {
		if len(row.cells) >= minTableCols {
			run = append(run, row)
		} else {
			flush()
		}
	}
	flush()
	return grids
}

// clusterRows groups words into rows by vertical proximity and splits each
// row into cells on gaps wider than cellGap. Words arrive in reading order.
func clusterRows(words []Word) []tableRow {
	if len(words) == 0 {
		return nil
	}

	var rows []tableRow
	var current []Word
	flushRow := func() {
		if len(current) > 0 {
			rows = append(rows, splitCells(current))
			current = nil
		}
	}

	for i, w := range words {
		if i > 0 && words[i-1].Y-w.Y > lineTolerance {
			flushRow()
		}
		current = append(current, w)
	}
	flushRow()
	return rows
}

func splitCells(line []Word) tableRow {
	var row tableRow
	start := 0
	for i := 1; i <= len(line); i++ {
		if i == len(line) || line[i].X0-line[i-1].X1 > cellGap {
			row.cells = append(row.cells, makeCell(line[start:i]))
			start = i
		}
	}
	return row
}

func makeCell(words []Word) tableCell {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return tableCell{text: strings.Join(parts, " "), x0: words[0].X0}
}

func buildGrid(rows []tableRow) Grid {
	cols := columnStarts(rows)
	if len(cols) < minTableCols {
		return nil
	}

	grid := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]*string, len(cols))
		for _, c := range row.cells {
			j := nearestColumn(cols, c.x0)
			if cells[j] != nil {
				joined := *cells[j] + " " + c.text
				cells[j] = &joined
				continue
			}
			text := c.text
			cells[j] = &text
		}
		grid[i] = cells
	}
	return grid
}

// columnStarts clusters cell start positions across rows into column
// anchors, left to right.
func columnStarts(rows []tableRow) []float64 {
	var xs []float64
	for _, row := range rows {
		for _, c := range row.cells {
			xs = append(xs, c.x0)
		}
	}
	sort.Float64s(xs)

	var cols []float64
	for _, x := range xs {
		if len(cols) == 0 || x-cols[len(cols)-1] > columnTolerance {
			cols = append(cols, x)
		}
	}
	return cols
}

func nearestColumn(cols []float64, x float64) int {
	best := 0
	for j := 1; j < len(cols); j++ {
		if math.Abs(x-cols[j]) < math.Abs(x-cols[best]) {
			best = j
		}
	}
	return best
}
