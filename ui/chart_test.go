package ui

import (
	"strings"
	"testing"
)

func TestBarChartDimensions(t *testing.T) {
	out := BarChart([]float64{0, 0.5, 1}, 4)
	rows := strings.Split(out, "\n")
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, but got %d", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 3 {
			t.Errorf("row %d: expected 3 columns, but got %d", i, n)
		}
	}
}

func TestBarChartExtremes(t *testing.T) {
	rows := strings.Split(BarChart([]float64{0, 1}, 3), "\n")
	for i, row := range rows {
		cols := []rune(row)
		if cols[0] != ' ' {
			t.Errorf("row %d: a zero level should stay blank, got %q", i, cols[0])
		}
		if cols[1] != '█' {
			t.Errorf("row %d: a full level should be solid, got %q", i, cols[1])
		}
	}
}

func TestBarChartClampsLevels(t *testing.T) {
	if BarChart([]float64{-2, 5}, 2) != BarChart([]float64{0, 1}, 2) {
		t.Error("out-of-range levels should clamp to [0, 1]")
	}
}

func TestLineChartPlotsOneDotPerColumn(t *testing.T) {
	points := make([]Point, 8)
	out := LineChart(points, 8, 5)
	rows := strings.Split(out, "\n")
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, but got %d", len(rows))
	}
	dots := 0
	for _, row := range rows {
		dots += strings.Count(row, "█")
	}
	if dots != 8 {
		t.Errorf("expected one dot per column, but got %d", dots)
	}
	// y = 0 everywhere lands on the midline row
	if strings.Count(rows[2], "█") != 8 {
		t.Errorf("expected all dots on the midline, but got: %q", rows[2])
	}
}

func TestLineChartMidline(t *testing.T) {
	points := []Point{{Y: 1}, {Y: 1}}
	rows := strings.Split(LineChart(points, 2, 5), "\n")
	if !strings.Contains(rows[2], "·") {
		t.Errorf("expected midline dots on the center row, but got: %q", rows[2])
	}
	if strings.Count(rows[0], "█") != 2 {
		t.Errorf("expected y=1 on the top row, but got: %q", rows[0])
	}
}

func TestLineChartEmpty(t *testing.T) {
	if out := LineChart(nil, 10, 5); out != "" {
		t.Errorf("expected empty output without points, but got: %q", out)
	}
}

func TestDownsampleKeepsPeaks(t *testing.T) {
	values := make([]float64, 100)
	values[37] = 0.9
	out := Downsample(values, 10)
	if len(out) != 10 {
		t.Fatalf("expected 10 buckets, but got %d", len(out))
	}
	if out[3] != 0.9 {
		t.Errorf("expected the peak to survive in bucket 3, but got: %v", out)
	}
}

func TestDownsamplePassthrough(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3}
	out := Downsample(values, 10)
	if len(out) != 3 {
		t.Fatalf("expected the input length back, but got %d", len(out))
	}
	out[0] = 5
	if values[0] == 5 {
		t.Error("passthrough should copy, not alias")
	}
}

func TestDownsampleEmpty(t *testing.T) {
	if Downsample(nil, 5) != nil {
		t.Error("expected nil for empty input")
	}
	if Downsample([]float64{1}, 0) != nil {
		t.Error("expected nil for zero width")
	}
}
