// Package board computes the hole layout for the play field.
package board

import "image"

// Grid dimensions.
const (
	GridRows = 3
	GridCols = 3
)

// Board holds the fixed hole positions for one screen size.
type Board struct {
	Rows, Cols int
	Holes      []image.Point // cell centers, row-major
	Radius     int           // mole radius; holes draw slightly larger
}

// New lays out rows x cols holes centered in the area that remains after
// reserving a width/8 margin left and right and a height/6 margin top and
// bottom. The mole radius is a third of the smaller cell dimension.
func New(width, height, rows, cols int) *Board {
	marginX := width / 8
	marginY := height / 6

	availableWidth := width - 2*marginX
	availableHeight := height - 2*marginY

	cellW := availableWidth / cols
	cellH := availableHeight / rows

	holes := make([]image.Point, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := marginX + cellW*col + cellW/2
			y := marginY + cellH*row + cellH/2
			holes = append(holes, image.Point{X: x, Y: y})
		}
	}

	return &Board{
		Rows:   rows,
		Cols:   cols,
		Holes:  holes,
		Radius: min(cellW, cellH) / 3,
	}
}
