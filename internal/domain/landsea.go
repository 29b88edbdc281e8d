package domain

import (
	"context"
	"log/slog"
)

// Oceanic/Terrestrial flag values. Every flattened row carries exactly one.
const (
	FlagOceanic     = "Oceanic"
	FlagTerrestrial = "Terrestrial"
	FlagUnknown     = "Unknown"
)

// LandSeaClassifier answers whether a WGS-84 coordinate lies in open water.
type LandSeaClassifier interface {
	IsOcean(ctx context.Context, lat, lon float64) (bool, error)
}

// ClassifyLandSea derives the Oceanic/Terrestrial flag for one row. A nil
// classifier, missing coordinates, or a lookup error all degrade to
// FlagUnknown; classification failure never aborts a run.
func ClassifyLandSea(ctx context.Context, m Measurement, classifier LandSeaClassifier, logger *slog.Logger) Measurement {
	if classifier == nil || m.Lat == nil || m.Lon == nil {
		m.Flag = FlagUnknown
		return m
	}

	ocean, err := classifier.IsOcean(ctx, *m.Lat, *m.Lon)
	if err != nil {
		logger.Warn("land/sea lookup failed",
			"study_id", m.StudyID,
			"lat", *m.Lat,
			"lon", *m.Lon,
			"error", err,
		)
		m.Flag = FlagUnknown
		return m
	}

	if ocean {
		m.Flag = FlagOceanic
	} else {
		m.Flag = FlagTerrestrial
	}
	return m
}
