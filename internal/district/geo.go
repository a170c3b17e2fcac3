package district

import (
	"math"

	"github.com/agrovision/cropadvisor/internal/domain"
)

// BoundingBox is the coarse envelope of the whole supported region.
// Coordinates outside it never reach the per-district distance table.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

var RegionBounds = BoundingBox{
	MinLat: 15.80, MaxLat: 19.95,
	MinLon: 77.20, MaxLon: 81.35,
}

func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// ReferencePoint is a district center with its own acceptance radius in
// degrees. A coordinate only matches a district when it lies within that
// district's radius; there is no unbounded nearest-neighbor fallback.
type ReferencePoint struct {
	District domain.District
	Lat      float64
	Lon      float64
	Radius   float64
}

var ReferencePoints = []ReferencePoint{
	{"Adilabad", 19.665, 78.532, 0.45},
	{"Bhadradri Kothagudem", 17.553, 80.619, 0.50},
	{"Hanumakonda", 18.010, 79.558, 0.25},
	{"Hyderabad", 17.385, 78.487, 0.25},
	{"Jagtial", 18.794, 78.916, 0.35},
	{"Jangaon", 17.726, 79.160, 0.30},
	{"Jayashankar Bhupalpally", 18.435, 79.860, 0.45},
	{"Jogulamba Gadwal", 16.233, 77.805, 0.40},
	{"Kamareddy", 18.320, 78.340, 0.40},
	{"Karimnagar", 18.438, 79.129, 0.35},
	{"Khammam", 17.247, 80.151, 0.45},
	{"Komaram Bheem Asifabad", 19.360, 79.284, 0.45},
	{"Mahabubabad", 17.598, 80.002, 0.40},
	{"Mahabubnagar", 16.744, 77.985, 0.40},
	{"Mancherial", 18.872, 79.459, 0.40},
	{"Medak", 18.046, 78.263, 0.35},
	{"Medchal-Malkajgiri", 17.629, 78.481, 0.25},
	{"Nagarkurnool", 16.482, 78.325, 0.45},
	{"Nalgonda", 17.054, 79.267, 0.45},
	{"Nirmal", 19.096, 78.344, 0.40},
	{"Nizamabad", 18.672, 78.094, 0.40},
	{"Peddapalli", 18.616, 79.374, 0.35},
	{"Rajanna Sircilla", 18.386, 78.812, 0.35},
	{"Rangareddy", 17.240, 78.430, 0.35},
	{"Sangareddy", 17.625, 78.086, 0.40},
	{"Siddipet", 18.102, 78.852, 0.40},
	{"Suryapet", 17.140, 79.623, 0.40},
	{"Vikarabad", 17.338, 77.904, 0.40},
	{"Wanaparthy", 16.361, 78.062, 0.35},
	{"Warangal", 17.969, 79.594, 0.30},
	{"Yadadri Bhuvanagiri", 17.510, 78.888, 0.35},
}

// NearestWithin returns the closest reference point to (lat, lon) when that
// point's own radius covers the distance. Euclidean distance in degrees is
// good enough at this region's scale.
func NearestWithin(lat, lon float64) (domain.District, bool) {
	best := domain.DistrictUnsupported
	bestDist := math.MaxFloat64
	bestRadius := 0.0

	for _, rp := range ReferencePoints {
		d := math.Hypot(lat-rp.Lat, lon-rp.Lon)
		if d < bestDist {
			best = rp.District
			bestDist = d
			bestRadius = rp.Radius
		}
	}

	if bestDist > bestRadius {
		return domain.DistrictUnsupported, false
	}
	return best, true
}
