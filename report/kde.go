package report

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// silverman is the rule-of-thumb bandwidth for a Gaussian kernel.
func silverman(xs []float64) float64 {
	sigma := stat.StdDev(xs, nil)
	if sigma == 0 {
		sigma = 1e-3
	}
	return 1.06 * sigma * math.Pow(float64(len(xs)), -0.2)
}

// kde1d evaluates a Gaussian kernel density estimate of xs at n evenly
// spaced points spanning the data range (padded by one bandwidth on
// each side).
func kde1d(xs []float64, n int) (grid, density []float64) {
	h := silverman(xs)
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	lo, hi = lo-h, hi+h
	grid = make([]float64, n)
	density = make([]float64, n)
	norm := 1 / (float64(len(xs)) * h * math.Sqrt(2*math.Pi))
	for i := range grid {
		g := lo + (hi-lo)*float64(i)/float64(n-1)
		grid[i] = g
		var sum float64
		for _, x := range xs {
			u := (g - x) / h
			sum += math.Exp(-0.5 * u * u)
		}
		density[i] = sum * norm
	}
	return grid, density
}

// densityGrid is a rectangular grid of density (or count) values,
// implementing plotter.GridXYZ.
type densityGrid struct {
	x, y []float64
	z    []float64 // row major, len(x)*len(y)
}

func (g *densityGrid) Dims() (int, int)   { return len(g.x), len(g.y) }
func (g *densityGrid) X(c int) float64    { return g.x[c] }
func (g *densityGrid) Y(r int) float64    { return g.y[r] }
func (g *densityGrid) Z(c, r int) float64 { return g.z[r*len(g.x)+c] }

func (g *densityGrid) set(c, r int, v float64) { g.z[r*len(g.x)+c] = v }

func newGrid(xs, ys []float64, nx, ny int) *densityGrid {
	xlo, xhi := minMax(xs)
	ylo, yhi := minMax(ys)
	// Widen degenerate ranges so binning stays well defined.
	if xhi == xlo {
		xhi = xlo + 1
	}
	if yhi == ylo {
		yhi = ylo + 1
	}
	g := &densityGrid{
		x: make([]float64, nx),
		y: make([]float64, ny),
		z: make([]float64, nx*ny),
	}
	for i := range g.x {
		g.x[i] = xlo + (xhi-xlo)*(float64(i)+0.5)/float64(nx)
	}
	for i := range g.y {
		g.y[i] = ylo + (yhi-ylo)*(float64(i)+0.5)/float64(ny)
	}
	return g
}

// countGrid bins (xs, ys) points onto an nx by ny grid.
func countGrid(xs, ys []float64, nx, ny int) *densityGrid {
	g := newGrid(xs, ys, nx, ny)
	xlo, xhi := minMax(xs)
	ylo, yhi := minMax(ys)
	for i := range xs {
		c := cellIndex(xs[i], xlo, xhi, nx)
		r := cellIndex(ys[i], ylo, yhi, ny)
		g.z[r*nx+c]++
	}
	return g
}

// kdeGrid evaluates a 2D Gaussian product-kernel density of (xs, ys)
// on an nx by ny grid.
func kdeGrid(xs, ys []float64, nx, ny int) *densityGrid {
	g := newGrid(xs, ys, nx, ny)
	hx, hy := silverman(xs), silverman(ys)
	for c := range g.x {
		for r := range g.y {
			var sum float64
			for i := range xs {
				u := (g.x[c] - xs[i]) / hx
				v := (g.y[r] - ys[i]) / hy
				sum += math.Exp(-0.5 * (u*u + v*v))
			}
			g.set(c, r, sum/(float64(len(xs))*hx*hy*2*math.Pi))
		}
	}
	return g
}

func cellIndex(v, lo, hi float64, n int) int {
	if hi == lo {
		return 0
	}
	i := int(float64(n) * (v - lo) / (hi - lo))
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	return i
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
