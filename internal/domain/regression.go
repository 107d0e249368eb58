package domain

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Line is a degree-1 polynomial y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Point is an (x, y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FitLine fits an ordinary least squares line to (xs[i], ys[i]).
func FitLine(xs, ys []float64) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, fmt.Errorf("fit line: %d x values but %d y values", len(xs), len(ys))
	}
	if len(UniqueSorted(xs)) < 2 {
		return Line{}, ErrDegenerateFit
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Line{Slope: slope, Intercept: intercept}, nil
}

// UniqueSorted returns the distinct values of xs in ascending order.
func UniqueSorted(xs []float64) []float64 {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}

// TrendLine fits a line to the pairs and evaluates it at each unique x, so the
// result may be shorter than the input when x values repeat.
func TrendLine(xs, ys []float64) ([]Point, Line, error) {
	line, err := FitLine(xs, ys)
	if err != nil {
		return nil, Line{}, err
	}
	ux := UniqueSorted(xs)
	pts := make([]Point, len(ux))
	for i, x := range ux {
		pts[i] = Point{X: x, Y: line.At(x)}
	}
	return pts, line, nil
}

// IsDegenerate reports whether err came from a fit with too few distinct x values.
func IsDegenerate(err error) bool {
	return errors.Is(err, ErrDegenerateFit)
}
