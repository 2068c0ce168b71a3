// Package geo holds the great-circle distance rules used when validating check-ins.
package geo

import (
	"fmt"
	"math"

	"github.com/hongminglow/field-checkin/internal/models"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// FarThresholdKm is the distance above which a check-in gets an advisory warning.
	FarThresholdKm = 0.5
)

// Distance returns the haversine distance in kilometers between two points,
// rounded to two decimal places.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Round2(EarthRadiusKm * c)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DistanceToSite measures how far the reported position is from the client site.
// It returns nil when either side is missing coordinates: distance unknown is not zero.
func DistanceToSite(lat, lon *float64, site models.Client) *float64 {
	if lat == nil || lon == nil || !site.HasLocation() {
		return nil
	}
	d := Distance(*lat, *lon, *site.Latitude, *site.Longitude)
	return &d
}

// Warning returns the advisory shown to an employee checking in far from the site.
// Unknown distances never produce a warning.
func Warning(distance *float64) string {
	if distance == nil || *distance <= FarThresholdKm {
		return ""
	}
	return fmt.Sprintf("You are %.2f km away from the client location", *distance)
}
