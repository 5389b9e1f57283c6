package game

import (
	"math/rand"
	"testing"
)

func TestFoodRelocateAvoidsOccupied(t *testing.T) {
	rng := rand.New(rand.NewSource(999))

	// Occupy everything except one row
	occupied := func(c Coord) bool { return c.Y != 3 }

	var f Food
	for range 100 {
		if !f.Relocate(rng, 8, 8, occupied) {
			t.Fatal("Relocate() failed with free cells available")
		}
		if occupied(f.Position()) {
			t.Fatalf("food relocated onto occupied cell %v", f.Position())
		}
		if f.Position().X < 0 || f.Position().X >= 8 || f.Position().Y < 0 || f.Position().Y >= 8 {
			t.Fatalf("food relocated out of bounds: %v", f.Position())
		}
	}
}

func TestFoodRelocateSingleFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	target := Coord{X: 2, Y: 2}
	occupied := func(c Coord) bool { return c != target }

	var f Food
	if !f.Relocate(rng, 5, 5, occupied) {
		t.Fatal("Relocate() failed with one free cell")
	}
	if f.Position() != target {
		t.Errorf("Position() = %v, expected the only free cell %v", f.Position(), target)
	}
}

func TestFoodRelocateFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var f Food
	if f.Relocate(rng, 4, 4, func(Coord) bool { return true }) {
		t.Error("Relocate() on a full board should report failure")
	}
}

func TestFoodRelocateDeterministic(t *testing.T) {
	free := func(Coord) bool { return false }

	var f1, f2 Food
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))

	for range 20 {
		f1.Relocate(rng1, 12, 9, free)
		f2.Relocate(rng2, 12, 9, free)
		if f1.Position() != f2.Position() {
			t.Fatalf("same seed produced different placements: %v vs %v", f1.Position(), f2.Position())
		}
	}
}
