// Package abstract builds an abstract rendition of an image by grouping
// like-colored connected pixels into regions and painting each region with its
// average color.
package abstract

import (
	"fmt"
	"image"
	"image/color"

	"PixelAbstraction/misc"
	"PixelAbstraction/pixels"

	"github.com/BrugadaSyndrome/bslogger"
)

const unlabeled = -1

type Abstracter struct {
	logger   bslogger.Logger
	settings Settings
}

func NewAbstracter(settings Settings) Abstracter {
	abstracter := Abstracter{
		logger:   bslogger.NewLogger("Abstracter", bslogger.Normal, nil),
		settings: settings,
	}
	misc.CheckError(abstracter.settings.Verify(), abstracter.logger, misc.Warning)
	return abstracter
}

// Regions groups the pixels of img into 4-connected regions. A pixel joins a
// region when its distance to the region's seed pixel is below the threshold.
// Seeds are taken in row-major order.
func (a *Abstracter) Regions(img image.Image) []*pixels.PixelList {
	bounds := img.Bounds()
	width := bounds.Dx()
	labels := make([]int, width*bounds.Dy())
	for i := range labels {
		labels[i] = unlabeled
	}
	index := func(p image.Point) int {
		return (p.Y-bounds.Min.Y)*width + (p.X - bounds.Min.X)
	}

	regions := make([]*pixels.PixelList, 0)
	var stack []image.Point
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if labels[index(image.Point{X: x, Y: y})] != unlabeled {
				continue
			}

			label := len(regions)
			seed := ColorOf(img.At(x, y))
			region := pixels.NewPixelList()
			stack = append(stack[:0], image.Point{X: x, Y: y})

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !p.In(bounds) || labels[index(p)] != unlabeled {
					continue
				}

				c := ColorOf(img.At(p.X, p.Y))
				if Distance(seed, c) >= a.settings.Threshold {
					continue
				}
				labels[index(p)] = label
				region.AddPixel(c, p.Y, p.X)

				stack = append(stack,
					image.Point{X: p.X + 1, Y: p.Y},
					image.Point{X: p.X - 1, Y: p.Y},
					image.Point{X: p.X, Y: p.Y + 1},
					image.Point{X: p.X, Y: p.Y - 1},
				)
			}
			regions = append(regions, region)
		}
	}
	a.logger.Debug(fmt.Sprintf("Found %d regions in %dx%d image", len(regions), width, bounds.Dy()))

	if a.settings.MinRegionSize <= 1 {
		return regions
	}
	return a.mergeSmallRegions(regions, labels, bounds)
}

// mergeSmallRegions folds every region below the minimum size into the first
// bordering region found. Merged regions are dropped from the result.
func (a *Abstracter) mergeSmallRegions(regions []*pixels.PixelList, labels []int, bounds image.Rectangle) []*pixels.PixelList {
	width := bounds.Dx()
	index := func(p image.Point) int {
		return (p.Y-bounds.Min.Y)*width + (p.X - bounds.Min.X)
	}

	merged := 0
	for label, region := range regions {
		if region.Size() == 0 || region.Size() >= a.settings.MinRegionSize {
			continue
		}

		members := region.Pixels()
		neighbor := unlabeled
		for _, member := range members {
			for _, p := range []image.Point{
				{X: member.Column + 1, Y: member.Row},
				{X: member.Column - 1, Y: member.Row},
				{X: member.Column, Y: member.Row + 1},
				{X: member.Column, Y: member.Row - 1},
			} {
				if p.In(bounds) && labels[index(p)] != label {
					neighbor = labels[index(p)]
					break
				}
			}
			if neighbor != unlabeled {
				break
			}
		}
		if neighbor == unlabeled {
			// The region covers the whole image
			continue
		}

		regions[neighbor].Merge(region)
		for _, member := range members {
			labels[index(image.Point{X: member.Column, Y: member.Row})] = neighbor
		}
		region.Clear()
		merged++
	}

	kept := make([]*pixels.PixelList, 0, len(regions)-merged)
	for _, region := range regions {
		if region.Size() > 0 {
			kept = append(kept, region)
		}
	}
	a.logger.Debug(fmt.Sprintf("Merged %d regions smaller than %d pixels", merged, a.settings.MinRegionSize))
	return kept
}

// Abstract paints every region of img with the region's average color.
func (a *Abstracter) Abstract(img image.Image) (*image.RGBA, error) {
	output := image.NewRGBA(img.Bounds())
	regions := a.Regions(img)

	for _, region := range regions {
		average, err := region.AverageColor()
		if err != nil {
			return nil, fmt.Errorf("unable to average region: %w", err)
		}
		fill := RGBA(average)
		for region.Size() > 0 {
			output.SetRGBA(region.FrontColumn(), region.FrontRow(), fill)
			region.RemoveFront()
		}
	}

	a.logger.Info(fmt.Sprintf("Abstracted image into %d regions", len(regions)))
	return output, nil
}

// Negative inverts every channel of img. The result is fully opaque.
func Negative(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	output := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := ColorOf(img.At(x, y))
			output.SetRGBA(x, y, RGBA(pixels.Color{
				Red:   255 - c.Red,
				Green: 255 - c.Green,
				Blue:  255 - c.Blue,
			}))
		}
	}
	return output
}

// Distance is the summed absolute difference of each channel.
func Distance(c1 pixels.Color, c2 pixels.Color) int {
	return abs(c1.Red-c2.Red) + abs(c1.Green-c2.Green) + abs(c1.Blue-c2.Blue)
}

// ColorOf converts c to 8-bit channels.
func ColorOf(c color.Color) pixels.Color {
	r, g, b, _ := c.RGBA()
	return pixels.Color{Red: int(r >> 8), Green: int(g >> 8), Blue: int(b >> 8)}
}

// RGBA converts c to an opaque color, clamping each channel to [0, 255].
func RGBA(c pixels.Color) color.RGBA {
	return color.RGBA{R: clamp(c.Red), G: clamp(c.Green), B: clamp(c.Blue), A: 255}
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
