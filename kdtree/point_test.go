package kdtree

import (
	"math"
	"testing"
)

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		tree     MunicipalTree
		lat, lon float64
		want     float64
	}{
		{MunicipalTree{Lat: 1, Lon: 1}, 1, 1, 0},
		{MunicipalTree{Lat: 1, Lon: 1}, 2, 2, math.Sqrt2},
		{MunicipalTree{Lat: 1, Lon: 1}, 3, 3, 2 * math.Sqrt2},
		{MunicipalTree{Lat: 43.724121, Lon: -79.551765}, 43.724121, -79.551765, 0},
		{MunicipalTree{Lat: 0, Lon: 0}, 3, 4, 5},
		{MunicipalTree{Lat: 0, Lon: 0}, -3, -4, 5},
	}
	for _, tt := range tests {
		got := tt.tree.DistanceTo(tt.lat, tt.lon)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistanceTo(%v, %v) from (%v, %v) = %v, want %v",
				tt.lat, tt.lon, tt.tree.Lat, tt.tree.Lon, got, tt.want)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := MunicipalTree{Lat: 43.739, Lon: -79.552}
	b := MunicipalTree{Lat: 43.752, Lon: -79.607}
	if a.DistanceTo(b.Lat, b.Lon) != b.DistanceTo(a.Lat, a.Lon) {
		t.Fatal("distance is not symmetric")
	}
}

func TestTreeString(t *testing.T) {
	tree := MunicipalTree{ID: 5216, Ward: 1, Species: "Yew", Diameter: 1, Lat: 43.724121, Lon: -79.551765}
	want := "Yew at (43.724, -79.552) with diameter 1"
	if got := tree.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
