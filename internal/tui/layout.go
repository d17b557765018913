package tui

// Layout geometry constants.
const (
	timeColWidth = 6 // "08:00 "
	headerLines  = 2 // toolbar + column header row
	minColWidth  = 8
	maxColWidth  = 26
)

// Layout maps between screen coordinates and board cells. The grid body
// starts below the header rows: a time rail on the left, then one column per
// team per visible day, laid out day-major.
type Layout struct {
	Width  int
	Height int

	Days      int // visible day count
	Cols      int // team columns per day
	SlotCount int

	ColWidth    int
	RowsPerSlot int // terminal lines per slot row
}

// NewLayout computes the geometry for the given terminal size and board
// shape. Column width stretches to fill the terminal within bounds.
func NewLayout(width, height, days, cols, slotCount int) Layout {
	l := Layout{
		Width:       width,
		Height:      height,
		Days:        days,
		Cols:        cols,
		SlotCount:   slotCount,
		ColWidth:    minColWidth,
		RowsPerSlot: 1,
	}

	totalCols := days * cols
	if totalCols > 0 && width > timeColWidth {
		l.ColWidth = (width - timeColWidth) / totalCols
		if l.ColWidth < minColWidth {
			l.ColWidth = minColWidth
		}
		if l.ColWidth > maxColWidth {
			l.ColWidth = maxColWidth
		}
	}

	// Spend spare vertical space on taller slot rows so blocks can show a
	// second text line.
	if slotCount > 0 {
		avail := height - headerLines - footerLines
		if avail >= slotCount*2 {
			l.RowsPerSlot = 2
		}
	}

	return l
}

const footerLines = 2

// CellAt resolves a screen position to a board cell. Returns false for the
// header rows, the time rail, and anything past the grid.
func (l Layout) CellAt(x, y int) (CellRef, bool) {
	if l.ColWidth <= 0 || l.RowsPerSlot <= 0 || l.Days <= 0 || l.Cols <= 0 {
		return CellRef{}, false
	}

	gridX := x - timeColWidth
	gridY := y - headerLines
	if gridX < 0 || gridY < 0 {
		return CellRef{}, false
	}

	global := gridX / l.ColWidth
	if global >= l.Days*l.Cols {
		return CellRef{}, false
	}

	slot := gridY / l.RowsPerSlot
	if slot >= l.SlotCount {
		return CellRef{}, false
	}

	return CellRef{
		Day:  global / l.Cols,
		Col:  global % l.Cols,
		Slot: slot,
	}, true
}

// SlotLine returns which line within its slot row a y coordinate falls on
// (0-based), for resolving presses on block bottom edges.
func (l Layout) SlotLine(y int) int {
	if l.RowsPerSlot <= 0 {
		return 0
	}
	gridY := y - headerLines
	if gridY < 0 {
		return 0
	}
	return gridY % l.RowsPerSlot
}

// ColX returns the left screen column of a board column.
func (l Layout) ColX(day, col int) int {
	return timeColWidth + (day*l.Cols+col)*l.ColWidth
}

// SlotY returns the top screen row of a slot.
func (l Layout) SlotY(slot int) int {
	return headerLines + slot*l.RowsPerSlot
}
