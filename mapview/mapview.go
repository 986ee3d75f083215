// Package mapview renders the municipal tree inventory over a static map
// and turns user clicks into nearest-neighbor queries against the spatial
// index. It owns the view-side state: the geographic window, the dataset,
// and the last query result, which is highlighted on the next render.
package mapview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"

	sm "github.com/flopp/go-staticmaps"
	"github.com/fogleman/gg"
	"github.com/golang/geo/s2"

	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/kdtree"
)

// Bounds is the geographic window of the rendered map.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// YorkBounds covers the part of Toronto the york_treelist inventory spans.
var YorkBounds = Bounds{
	MinLat: 43.745431, MaxLat: 43.781322,
	MinLon: -79.533667, MaxLon: -79.424748,
}

// Contains reports whether (lat, lon) falls inside the window.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Result is one answered nearest-neighbor query.
type Result struct {
	Tree     kdtree.MunicipalTree
	Distance float64
}

// View draws the tree inventory and answers click-driven queries. Safe for
// concurrent use by http handlers.
type View struct {
	trees  []kdtree.MunicipalTree
	index  *kdtree.KDTree
	bounds Bounds
	width  int
	height int

	mu   sync.Mutex
	last *Result
}

// New creates a view over the given dataset and index, using the default
// York map window at 1340x600 pixels.
func New(trees []kdtree.MunicipalTree, index *kdtree.KDTree) *View {
	return &View{
		trees:  trees,
		index:  index,
		bounds: YorkBounds,
		width:  1340,
		height: 600,
	}
}

// SetBounds replaces the geographic window.
func (v *View) SetBounds(b Bounds) { v.bounds = b }

// SetSize replaces the pixel dimensions of the rendered image.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Size returns the pixel dimensions of the rendered image.
func (v *View) Size() (width, height int) { return v.width, v.height }

// PixelToGeo converts a pixel position inside the rendered image to
// geographic coordinates. Pixel (0, 0) is the top-left corner.
func (v *View) PixelToGeo(px, py float64) (lat, lon float64) {
	lat = v.bounds.MinLat + (v.bounds.MaxLat-v.bounds.MinLat)*(float64(v.height)-py)/float64(v.height)
	lon = v.bounds.MinLon + (v.bounds.MaxLon-v.bounds.MinLon)*px/float64(v.width)
	return lat, lon
}

// Nearest queries the index and records the result for the next render.
func (v *View) Nearest(lat, lon float64) (Result, error) {
	tree, dist, err := v.index.Nearest(lat, lon)
	if err != nil {
		return Result{}, err
	}
	res := Result{Tree: tree, Distance: dist}
	v.mu.Lock()
	v.last = &res
	v.mu.Unlock()
	return res, nil
}

// NearestToPixel is Nearest for a click position on the rendered image.
func (v *View) NearestToPixel(px, py float64) (Result, error) {
	lat, lon := v.PixelToGeo(px, py)
	return v.Nearest(lat, lon)
}

// LastResult returns the most recently answered query, or nil.
func (v *View) LastResult() *Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}

// RenderPNG renders the map window with one marker per visible tree. The
// last query result, if any, gets a highlight ring and its ID stamped
// above it.
func (v *View) RenderPNG(w io.Writer) error {
	ctx := sm.NewContext()
	ctx.SetSize(v.width, v.height)

	bbox := s2.EmptyRect()
	bbox = bbox.AddPoint(s2.LatLngFromDegrees(v.bounds.MinLat, v.bounds.MinLon))
	bbox = bbox.AddPoint(s2.LatLngFromDegrees(v.bounds.MaxLat, v.bounds.MaxLon))
	ctx.SetBoundingBox(bbox)

	markerCol := color.RGBA{0xd0, 0x2f, 0x2f, 0xff}
	for _, t := range v.trees {
		if !v.bounds.Contains(t.Lat, t.Lon) {
			continue
		}
		ctx.AddObject(sm.NewMarker(s2.LatLngFromDegrees(t.Lat, t.Lon), markerCol, 8.0))
	}

	img, rendered, err := ctx.RenderWithBounds()
	if err != nil {
		return fmt.Errorf("render map: %w", err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, img.Bounds(), img, img.Bounds().Min, draw.Src)

	dc := gg.NewContextForRGBA(rgba)
	if last := v.LastResult(); last != nil {
		px, py := projectToImage(rendered, rgba.Bounds(), last.Tree.Lat, last.Tree.Lon)
		dc.DrawCircle(px, py, 13)
		dc.SetRGB(0, 0.75, 0.75)
		dc.SetLineWidth(3)
		dc.Stroke()
		drawNumber(rgba, last.Tree.ID, int(px), int(py)-22)
	}
	return dc.EncodePNG(w)
}

// projectToImage maps coordinates to a pixel position inside the rendered
// image. The map window is small enough that the mercator latitude scale is
// treated as linear across it.
func projectToImage(rendered s2.Rect, bounds image.Rectangle, lat, lon float64) (px, py float64) {
	lo, hi := rendered.Lo(), rendered.Hi()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	px = w * (lon - lo.Lng.Degrees()) / (hi.Lng.Degrees() - lo.Lng.Degrees())
	py = h * (hi.Lat.Degrees() - lat) / (hi.Lat.Degrees() - lo.Lat.Degrees())
	return px, py
}
