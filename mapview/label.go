package mapview

import (
	"image"
	"image/color"
	"strconv"
)

// Simple 5x7 bitmap font for digits
var digitBitmaps = map[rune][][]bool{
	'0': {
		{false, true, true, true, false},
		{true, false, false, false, true},
		{true, false, false, true, true},
		{true, false, true, false, true},
		{true, true, false, false, true},
		{true, false, false, false, true},
		{false, true, true, true, false},
	},
	'1': {
		{false, false, true, false, false},
		{false, true, true, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, true, true, true, false},
	},
	'2': {
		{false, true, true, true, false},
		{true, false, false, false, true},
		{false, false, false, false, true},
		{false, false, false, true, false},
		{false, false, true, false, false},
		{false, true, false, false, false},
		{true, true, true, true, true},
	},
	'3': {
		{false, true, true, true, false},
		{true, false, false, false, true},
		{false, false, false, false, true},
		{false, false, true, true, false},
		{false, false, false, false, true},
		{true, false, false, false, true},
		{false, true, true, true, false},
	},
	'4': {
		{false, false, false, true, false},
		{false, false, true, true, false},
		{false, true, false, true, false},
		{true, false, false, true, false},
		{true, true, true, true, true},
		{false, false, false, true, false},
		{false, false, false, true, false},
	},
	'5': {
		{true, true, true, true, true},
		{true, false, false, false, false},
		{true, true, true, true, false},
		{false, false, false, false, true},
		{false, false, false, false, true},
		{true, false, false, false, true},
		{false, true, true, true, false},
	},
	'6': {
		{false, true, true, true, false},
		{true, false, false, false, false},
		{true, false, false, false, false},
		{true, true, true, true, false},
		{true, false, false, false, true},
		{true, false, false, false, true},
		{false, true, true, true, false},
	},
	'7': {
		{true, true, true, true, true},
		{false, false, false, false, true},
		{false, false, false, true, false},
		{false, false, true, false, false},
		{false, true, false, false, false},
		{false, true, false, false, false},
		{false, true, false, false, false},
	},
	'8': {
		{false, true, true, true, false},
		{true, false, false, false, true},
		{true, false, false, false, true},
		{false, true, true, true, false},
		{true, false, false, false, true},
		{true, false, false, false, true},
		{false, true, true, true, false},
	},
	'9': {
		{false, true, true, true, false},
		{true, false, false, false, true},
		{true, false, false, false, true},
		{false, true, true, true, true},
		{false, false, false, false, true},
		{false, false, false, false, true},
		{false, true, true, true, false},
	},
}

const (
	digitWidth  = 5
	digitHeight = 7
	digitGap    = 1
)

// drawNumber stamps num centered at (x, y), white digits over a black
// outline so the label stays readable on any tile background.
func drawNumber(img *image.RGBA, num int, x, y int) {
	digits := strconv.Itoa(num)
	total := len(digits)*(digitWidth+digitGap) - digitGap
	startX := x - total/2
	for i, d := range digits {
		drawDigit(img, d, startX+i*(digitWidth+digitGap), y-digitHeight/2)
	}
}

// drawDigit draws a single digit with its top-left corner at (x, y).
func drawDigit(img *image.RGBA, digit rune, x, y int) {
	bitmap := digitBitmaps[digit]
	if bitmap == nil {
		return
	}

	outlineColor := color.RGBA{0, 0, 0, 255}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawBitmap(img, bitmap, x+dx, y+dy, outlineColor)
		}
	}

	textColor := color.RGBA{255, 255, 255, 255}
	drawBitmap(img, bitmap, x, y, textColor)
}

// drawBitmap draws a bitmap at the specified position
func drawBitmap(img *image.RGBA, bitmap [][]bool, startX, startY int, c color.Color) {
	bounds := img.Bounds()
	for y, row := range bitmap {
		for x, pixel := range row {
			if pixel {
				px := startX + x
				py := startY + y
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					img.Set(px, py, c)
				}
			}
		}
	}
}
