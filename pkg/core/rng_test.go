package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBinary(NewRNG(7), a, 0.4)
	FillBinary(NewRNG(7), b, 0.4)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("cell %d holds %d, expected 0 or 1", i, v)
		}
	}
}

func TestFillBinaryDensityBounds(t *testing.T) {
	buf := make([]uint8, 64)
	FillBinary(NewRNG(1), buf, 0)
	for _, v := range buf {
		if v != 0 {
			t.Fatal("density 0 produced a live cell")
		}
	}
	FillBinary(NewRNG(1), buf, 1)
	for _, v := range buf {
		if v != 1 {
			t.Fatal("density 1 produced a dead cell")
		}
	}
}
