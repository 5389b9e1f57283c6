package game

import "math/rand"

// Food is a single consumable cell on the board.
type Food struct {
	pos Coord
}

// Position returns the cell the food currently occupies.
func (f *Food) Position() Coord {
	return f.pos
}

// Relocate places the food on a uniformly random free cell of a
// width x height board, where occupied reports cells that are taken.
// Sampling from the explicit complement set keeps relocation bounded
// even on nearly full boards. Returns false if no free cell exists.
func (f *Food) Relocate(rng *rand.Rand, width, height int, occupied func(Coord) bool) bool {
	free := make([]Coord, 0, width*height)
	for y := range height {
		for x := range width {
			c := Coord{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	f.pos = free[rng.Intn(len(free))]
	return true
}
