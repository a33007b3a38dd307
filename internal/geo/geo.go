package geo

import (
	"encoding/binary"
	"math"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/config"
)

// Coordinates on the wire are [lat, lng] pairs; go-geom (and GeoJSON, and the
// WKB column) order axes as X=lng, Y=lat. All flipping happens here.

// ValidatePoint checks a single latitude/longitude pair.
func ValidatePoint(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return apperrors.NewValidation("lat", "latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return apperrors.NewValidation("lng", "longitude must be between -180 and 180")
	}
	return nil
}

// EncodeLine validates [lat,lng] pairs and returns the WKB LINESTRING bytes
// the Road model persists.
func EncodeLine(pairs [][]float64) ([]byte, error) {
	if len(pairs) < config.MinRoadPoints {
		return nil, apperrors.NewValidation("coordinates", "at least 2 points are required")
	}
	if len(pairs) > config.MaxRoadPoints {
		return nil, apperrors.NewValidation("coordinates", "too many points")
	}

	flat := make([]float64, 0, len(pairs)*2)
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, apperrors.NewValidation("coordinates", "each point must be a [lat,lng] pair")
		}
		if err := ValidatePoint(p[0], p[1]); err != nil {
			return nil, err
		}
		flat = append(flat, p[1], p[0]) // lng, lat
	}

	line := geom.NewLineStringFlat(geom.XY, flat)
	return wkb.Marshal(line, binary.LittleEndian)
}

// DecodeLine converts stored WKB bytes back into [lat,lng] pairs.
func DecodeLine(wkbBytes []byte) ([][]float64, error) {
	if len(wkbBytes) == 0 {
		return nil, nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return nil, err
	}
	line, ok := g.(*geom.LineString)
	if !ok {
		return nil, apperrors.NewValidation("geometry", "stored geometry is not a linestring")
	}

	coords := line.Coords()
	pairs := make([][]float64, 0, len(coords))
	for _, c := range coords {
		pairs = append(pairs, []float64{c.Y(), c.X()})
	}
	return pairs, nil
}

// ToGeoJSON renders stored WKB bytes as a GeoJSON string for map clients.
func ToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

const earthRadiusM = 6371000.0

// Haversine returns the great-circle distance in meters between two
// [lat,lng] points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// PathLength sums segment distances over an ordered [lat,lng] sequence.
func PathLength(pairs [][]float64) float64 {
	var total float64
	for i := 1; i < len(pairs); i++ {
		total += Haversine(pairs[i-1][0], pairs[i-1][1], pairs[i][0], pairs[i][1])
	}
	return total
}
