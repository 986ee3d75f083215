package kdtree

import (
	"fmt"
	"math"
)

// MunicipalTree is one record from the municipal tree inventory: a location
// plus the attributes carried along with it. The index never inspects
// anything but the coordinates.
type MunicipalTree struct {
	ID       int
	Ward     int
	Species  string
	Diameter int
	Lon      float64
	Lat      float64
}

func (t MunicipalTree) String() string {
	return fmt.Sprintf("%s at (%.3f, %.3f) with diameter %d", t.Species, t.Lat, t.Lon, t.Diameter)
}

// DistanceTo returns the Euclidean distance from this tree to the given
// coordinates.
func (t MunicipalTree) DistanceTo(lat, lon float64) float64 {
	return math.Sqrt(t.distanceSquared(lat, lon))
}

// distanceSquared skips the square root; it orders candidates the same way.
func (t MunicipalTree) distanceSquared(lat, lon float64) float64 {
	dLat := t.Lat - lat
	dLon := t.Lon - lon
	return dLat*dLat + dLon*dLon
}

// coord returns the coordinate on the given split axis (0 = lat, 1 = lon).
func (t MunicipalTree) coord(axis int) float64 {
	if axis == axisLat {
		return t.Lat
	}
	return t.Lon
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
