package pixels

import "fmt"

// Pixel is one stored sample: a color tagged with the row and column it came from.
type Pixel struct {
	Color  Color
	Column int
	Row    int
}

func (p Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}
