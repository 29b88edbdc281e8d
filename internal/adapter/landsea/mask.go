// Package landsea provides domain.LandSeaClassifier implementations: a local
// GeoJSON land-mask lookup, a remote boundary service client, and an LRU
// cache decorator for the latter.
package landsea

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Mask classifies coordinates by point-in-polygon lookup against a landmass
// GeoJSON file. A point inside any land polygon is terrestrial; everything
// else is open water. Lookups are read-only, so a Mask is safe for concurrent
// use.
type Mask struct {
	polygons      []orb.Polygon
	multiPolygons []orb.MultiPolygon
}

// LoadMask reads a GeoJSON FeatureCollection of landmass polygons.
func LoadMask(path string) (*Mask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read land mask: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse land mask: %w", err)
	}

	m := &Mask{}
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			m.polygons = append(m.polygons, g)
		case orb.MultiPolygon:
			m.multiPolygons = append(m.multiPolygons, g)
		}
	}
	if len(m.polygons) == 0 && len(m.multiPolygons) == 0 {
		return nil, fmt.Errorf("land mask %s contains no polygons", path)
	}
	return m, nil
}

// IsOcean reports whether the coordinate falls outside every land polygon.
func (m *Mask) IsOcean(_ context.Context, lat, lon float64) (bool, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false, fmt.Errorf("coordinate out of range: %.4f,%.4f", lat, lon)
	}

	point := orb.Point{lon, lat}
	for _, p := range m.polygons {
		if planar.PolygonContains(p, point) {
			return false, nil
		}
	}
	for _, mp := range m.multiPolygons {
		if planar.MultiPolygonContains(mp, point) {
			return false, nil
		}
	}
	return true, nil
}
