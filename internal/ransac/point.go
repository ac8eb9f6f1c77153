package ransac

import "fmt"

// Point is a 2-d sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Points splits the given points into the series of their coordinates.
func Points(pp []Point) (xx, yy []float64) {
	xx = make([]float64, len(pp))
	yy = make([]float64, len(pp))
	for i, p := range pp {
		xx[i] = p.X
		yy[i] = p.Y
	}
	return xx, yy
}
