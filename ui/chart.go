package ui

import "strings"

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// BarChart renders levels in [0, 1] as a bottom-up bar field, one
// column per level, height rows tall.
func BarChart(levels []float64, height int) string {
	if height < 1 {
		height = 1
	}
	rows := make([]string, height)
	for row := 0; row < height; row++ {
		var line strings.Builder
		for _, v := range levels {
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			level := v * float64(height)
			fromBottom := float64(height - 1 - row)
			idx := 0
			if level > fromBottom+1 {
				idx = len(barChars) - 1
			} else if level > fromBottom {
				idx = int((level - fromBottom) * float64(len(barChars)-1))
			}
			line.WriteRune(barChars[idx])
		}
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

// LineChart renders y values in [-1, 1] as one dot per column on a
// width x height cell grid, with a faint midline at y = 0.
func LineChart(points []Point, width, height int) string {
	if width < 1 || height < 1 || len(points) == 0 {
		return ""
	}
	grid := make([][]rune, height)
	mid := (height - 1) / 2
	for r := range grid {
		grid[r] = make([]rune, width)
		fill := ' '
		if r == mid {
			fill = '·'
		}
		for c := range grid[r] {
			grid[r][c] = fill
		}
	}
	for col := 0; col < width; col++ {
		y := points[col*len(points)/width].Y
		if y > 1 {
			y = 1
		}
		if y < -1 {
			y = -1
		}
		row := int((1 - y) / 2 * float64(height-1))
		grid[row][col] = '█'
	}
	rows := make([]string, height)
	for r := range grid {
		rows[r] = string(grid[r])
	}
	return strings.Join(rows, "\n")
}

// Downsample reduces values to width columns, keeping each bucket's
// maximum so narrow spectral peaks stay visible.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i, v := range values {
		bucket := i * width / len(values)
		if v > out[bucket] {
			out[bucket] = v
		}
	}
	return out
}
