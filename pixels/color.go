package pixels

import "fmt"

// Color holds three independent integer channels. Values are never clamped.
type Color struct {
	Red   int
	Green int
	Blue  int
}

func (c Color) String() string {
	return fmt.Sprintf("{Color Red: %d Green: %d Blue: %d}", c.Red, c.Green, c.Blue)
}
