package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/kdtree"
	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/mapview"
)

const (
	renderTimeout = 30 * time.Second
	geojsonLimit  = 10000
	maxParamLen   = 1 << 12
)

type treeInfo struct {
	ID       int     `json:"id"`
	Ward     int     `json:"ward"`
	Species  string  `json:"species"`
	Diameter int     `json:"diameter"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type nearestResponse struct {
	Tree     treeInfo `json:"tree"`
	Distance float64  `json:"distance"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type server struct {
	view *mapview.View
}

// handleNearest answers a nearest-tree query. Coordinates come either as
// lat/lon or as px/py pixel positions on the rendered map image.
func (s *server) handleNearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	res, err := s.queryFromRequest(r)
	if err != nil {
		sendJSONError(w, err.Error(), statusForError(err))
		return
	}

	log.Printf("Nearest to query: %s (distance %.5f)", res.Tree, res.Distance)

	response := nearestResponse{
		Tree: treeInfo{
			ID:       res.Tree.ID,
			Ward:     res.Tree.Ward,
			Species:  res.Tree.Species,
			Diameter: res.Tree.Diameter,
			Lat:      res.Tree.Lat,
			Lon:      res.Tree.Lon,
		},
		Distance: res.Distance,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func (s *server) queryFromRequest(r *http.Request) (mapview.Result, error) {
	q := r.URL.Query()
	if q.Has("px") || q.Has("py") {
		px, err := parseFloatParam(q.Get("px"), "px")
		if err != nil {
			return mapview.Result{}, err
		}
		py, err := parseFloatParam(q.Get("py"), "py")
		if err != nil {
			return mapview.Result{}, err
		}
		return s.view.NearestToPixel(px, py)
	}

	lat, err := parseFloatParam(q.Get("lat"), "lat")
	if err != nil {
		return mapview.Result{}, err
	}
	lon, err := parseFloatParam(q.Get("lon"), "lon")
	if err != nil {
		return mapview.Result{}, err
	}
	return s.view.Nearest(lat, lon)
}

// handleMap renders the current map image. Tile fetching goes over the
// network, so rendering runs under a timeout.
func (s *server) handleMap(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	resultChan := make(chan struct {
		buf *bytes.Buffer
		err error
	}, 1)

	go func() {
		var buf bytes.Buffer
		err := s.view.RenderPNG(&buf)
		resultChan <- struct {
			buf *bytes.Buffer
			err error
		}{&buf, err}
	}()

	select {
	case <-ctx.Done():
		sendJSONError(w, "Render timeout", http.StatusRequestTimeout)
	case res := <-resultChan:
		if res.err != nil {
			sendJSONError(w, res.err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if _, err := res.buf.WriteTo(w); err != nil {
			log.Printf("Failed to write map image: %v", err)
		}
	}
}

// handleGeoJSON serves the dataset as a GeoJSON feature collection.
func (s *server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	fc := s.view.FeatureCollection(geojsonLimit)
	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		log.Printf("Failed to write geojson: %v", err)
	}
}

func parseFloatParam(val, name string) (float64, error) {
	if val == "" {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	if len(val) > maxParamLen {
		return 0, fmt.Errorf("parameter %q too long", name)
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("bad parameter %q: %w", name, err)
	}
	return f, nil
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, kdtree.ErrInvalidCoordinate):
		return http.StatusBadRequest
	case errors.Is(err, kdtree.ErrEmptyTree):
		return http.StatusNotFound
	case errors.Is(err, strconv.ErrSyntax), errors.Is(err, strconv.ErrRange):
		return http.StatusBadRequest
	}
	// missing-parameter errors from parseFloatParam
	return http.StatusBadRequest
}

func sendJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		log.Printf("Failed to write error response: %v", err)
	}
}
