package viz

import "strings"

// Canvas is a character grid mapping a fixed region of the simulation's
// XY plane onto terminal cells.
type Canvas struct {
	width, height          int
	xMin, xMax, yMin, yMax float64
	cells                  [][]rune
}

func NewCanvas(width, height int, xMin, xMax, yMin, yMax float64) *Canvas {
	c := &Canvas{
		width: width, height: height,
		xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax,
	}
	c.cells = make([][]rune, height)
	for i := range c.cells {
		c.cells[i] = make([]rune, width)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for i := range row {
			row[i] = ' '
		}
	}
}

// project maps world coordinates to a cell, reporting false off-canvas.
func (c *Canvas) project(x, y float64) (int, int, bool) {
	if x < c.xMin || x > c.xMax || y < c.yMin || y > c.yMax {
		return 0, 0, false
	}
	col := int((x - c.xMin) / (c.xMax - c.xMin) * float64(c.width-1))
	row := int((c.yMax - y) / (c.yMax - c.yMin) * float64(c.height-1))
	return col, row, true
}

func (c *Canvas) Plot(x, y float64, ch rune) {
	if col, row, ok := c.project(x, y); ok {
		c.cells[row][col] = ch
	}
}

// HLine draws a horizontal rule at world height y across the canvas.
func (c *Canvas) HLine(y float64, ch rune) {
	if _, row, ok := c.project(c.xMin, y); ok {
		for i := range c.cells[row] {
			c.cells[row][i] = ch
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
