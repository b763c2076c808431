package ui

// atomLayout returns the centres of n atom markers inside a unit cell, as
// fractions of the cell size. Up to four atoms get their own marker; larger
// stacks are drawn as four markers.
func atomLayout(n uint32) [][2]float32 {
	switch n {
	case 0:
		return nil
	case 1:
		return [][2]float32{{0.5, 0.5}}
	case 2:
		return [][2]float32{{0.32, 0.5}, {0.68, 0.5}}
	case 3:
		return [][2]float32{{0.5, 0.3}, {0.32, 0.66}, {0.68, 0.66}}
	default:
		return [][2]float32{{0.32, 0.32}, {0.68, 0.32}, {0.32, 0.68}, {0.68, 0.68}}
	}
}
