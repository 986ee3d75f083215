package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/kdtree"
)

// FeatureCollection returns the dataset as a GeoJSON feature collection for
// web map clients. A limit > 0 caps the number of features.
func (v *View) FeatureCollection(limit int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, t := range v.trees {
		if limit > 0 && i >= limit {
			break
		}
		fc.Append(treeFeature(t))
	}
	return fc
}

// ResultFeature returns a query result as a GeoJSON feature carrying the
// distance to the query point.
func ResultFeature(res Result) *geojson.Feature {
	f := treeFeature(res.Tree)
	f.Properties["distance"] = res.Distance
	return f
}

func treeFeature(t kdtree.MunicipalTree) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{t.Lon, t.Lat})
	f.ID = t.ID
	f.Properties["species"] = t.Species
	f.Properties["ward"] = t.Ward
	f.Properties["diameter"] = t.Diameter
	return f
}
