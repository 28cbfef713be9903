package pixels

import (
	"errors"
	"fmt"
)

var ErrEmptyList = errors.New("pixel list is empty")

// PixelList is an ordered collection of pixels with running channel totals.
// The most recently added pixel is the front of the list.
//
// The zero value is an empty list ready to use. A PixelList is not safe for
// concurrent use.
type PixelList struct {
	// records is stored back to front so that the front is the last element
	records    []Pixel
	totalRed   int
	totalGreen int
	totalBlue  int
}

func NewPixelList() *PixelList {
	return &PixelList{}
}

// NewPixelListWith returns a list holding a single pixel.
func NewPixelListWith(c Color, row int, column int) *PixelList {
	pl := NewPixelList()
	pl.AddPixel(c, row, column)
	return pl
}

// Clone returns a copy of the list that shares no storage with pl.
func (pl *PixelList) Clone() *PixelList {
	clone := NewPixelList()
	clone.CopyFrom(pl)
	return clone
}

// CopyFrom replaces the contents of pl with a copy of src. Copying a list onto
// itself leaves it unchanged.
func (pl *PixelList) CopyFrom(src *PixelList) {
	if pl == src {
		return
	}

	pl.Clear()
	if src == nil || len(src.records) == 0 {
		return
	}

	pl.records = make([]Pixel, len(src.records))
	copy(pl.records, src.records)
	pl.totalRed = src.totalRed
	pl.totalGreen = src.totalGreen
	pl.totalBlue = src.totalBlue
}

// Equal reports whether both lists hold the same pixels in the same order.
func (pl *PixelList) Equal(other *PixelList) bool {
	if pl == other {
		return true
	}
	if pl == nil || other == nil {
		return pl.Size() == 0 && other.Size() == 0
	}

	if len(pl.records) != len(other.records) || pl.totalRed != other.totalRed ||
		pl.totalGreen != other.totalGreen || pl.totalBlue != other.totalBlue {
		return false
	}
	for i := range pl.records {
		if pl.records[i] != other.records[i] {
			return false
		}
	}
	return true
}

// AddPixel inserts a pixel at the front of the list.
func (pl *PixelList) AddPixel(c Color, row int, column int) {
	pl.records = append(pl.records, Pixel{Color: c, Column: column, Row: row})
	pl.totalRed += c.Red
	pl.totalGreen += c.Green
	pl.totalBlue += c.Blue
}

// Merge copies every pixel of other into pl. other is not modified.
//
// other is walked front to back and each pixel is inserted at the front of pl,
// so the merged pixels end up ahead of pl's own pixels in reverse order.
// Callers should not depend on that order.
func (pl *PixelList) Merge(other *PixelList) {
	if other == nil {
		return
	}

	// Snapshot the length so merging a list into itself terminates
	n := len(other.records)
	for i := n - 1; i >= 0; i-- {
		p := other.records[i]
		pl.AddPixel(p.Color, p.Row, p.Column)
	}
}

// AverageColor returns the per-channel truncated mean of every pixel in the list.
func (pl *PixelList) AverageColor() (Color, error) {
	size := pl.Size()
	if size == 0 {
		return Color{}, ErrEmptyList
	}
	return Color{
		Red:   pl.totalRed / size,
		Green: pl.totalGreen / size,
		Blue:  pl.totalBlue / size,
	}, nil
}

// RemoveFront drops the front pixel. It does nothing on an empty list.
func (pl *PixelList) RemoveFront() {
	last := len(pl.records) - 1
	if last < 0 {
		return
	}

	p := pl.records[last]
	pl.records = pl.records[:last]
	pl.totalRed -= p.Color.Red
	pl.totalGreen -= p.Color.Green
	pl.totalBlue -= p.Color.Blue

	if last == 0 {
		pl.records = nil
	}
}

// Clear removes every pixel and resets the totals.
func (pl *PixelList) Clear() {
	pl.records = nil
	pl.totalRed = 0
	pl.totalGreen = 0
	pl.totalBlue = 0
}

func (pl *PixelList) Size() int {
	if pl == nil {
		return 0
	}
	return len(pl.records)
}

// Front returns the front pixel, or false when the list is empty.
func (pl *PixelList) Front() (Pixel, bool) {
	if pl.Size() == 0 {
		return Pixel{}, false
	}
	return pl.records[len(pl.records)-1], true
}

// FrontRow returns the row of the front pixel, or -1 when the list is empty.
func (pl *PixelList) FrontRow() int {
	p, ok := pl.Front()
	if !ok {
		return -1
	}
	return p.Row
}

// FrontColumn returns the column of the front pixel, or -1 when the list is empty.
func (pl *PixelList) FrontColumn() int {
	p, ok := pl.Front()
	if !ok {
		return -1
	}
	return p.Column
}

// Totals returns the running sum of each channel.
func (pl *PixelList) Totals() (red int, green int, blue int) {
	if pl == nil {
		return 0, 0, 0
	}
	return pl.totalRed, pl.totalGreen, pl.totalBlue
}

// Pixels returns a copy of the stored pixels ordered front to back.
func (pl *PixelList) Pixels() []Pixel {
	size := pl.Size()
	output := make([]Pixel, size)
	for i := 0; i < size; i++ {
		output[i] = pl.records[size-1-i]
	}
	return output
}

func (pl *PixelList) String() string {
	red, green, blue := pl.Totals()
	output := "{PixelList "
	output += fmt.Sprintf("Size: %d ", pl.Size())
	output += fmt.Sprintf("Total Red: %d ", red)
	output += fmt.Sprintf("Total Green: %d ", green)
	output += fmt.Sprintf("Total Blue: %d}", blue)
	return output
}
