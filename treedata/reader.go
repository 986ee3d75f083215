// Package treedata reads municipal tree inventory files. The expected
// format is the city export: one csv row per tree with the columns
// id, ward, species, diameter, lon, lat and a leading header row.
package treedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/kdtree"
)

// ReadTrees reads the tree inventory from a csv file.
func ReadTrees(path string) ([]kdtree.MunicipalTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	trees, err := ReadTreesFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return trees, nil
}

// ReadTreesFrom parses tree records from r. The first row is a header and
// is skipped.
func ReadTreesFrom(r io.Reader) ([]kdtree.MunicipalTree, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6

	var trees []kdtree.MunicipalTree
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			continue // header
		}
		t, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trees = append(trees, t)
	}
	return trees, nil
}

func parseRecord(record []string) (kdtree.MunicipalTree, error) {
	id, err := strconv.Atoi(record[0])
	if err != nil {
		return kdtree.MunicipalTree{}, fmt.Errorf("bad id %q: %w", record[0], err)
	}
	ward, err := strconv.Atoi(record[1])
	if err != nil {
		return kdtree.MunicipalTree{}, fmt.Errorf("bad ward %q: %w", record[1], err)
	}
	diameter, err := strconv.Atoi(record[3])
	if err != nil {
		return kdtree.MunicipalTree{}, fmt.Errorf("bad diameter %q: %w", record[3], err)
	}
	lon, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return kdtree.MunicipalTree{}, fmt.Errorf("bad lon %q: %w", record[4], err)
	}
	lat, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return kdtree.MunicipalTree{}, fmt.Errorf("bad lat %q: %w", record[5], err)
	}

	return kdtree.MunicipalTree{
		ID:       id,
		Ward:     ward,
		Species:  record[2],
		Diameter: diameter,
		Lon:      lon,
		Lat:      lat,
	}, nil
}
