package services

import (
	"errors"
	"math"
	"sort"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
)

var ErrNoHoleReturned = errors.New("no hole returned")

type HoleService struct {
	HoleRepo *repository.HoleRepository
}

func NewHoleService(hr *repository.HoleRepository) *HoleService {
	return &HoleService{HoleRepo: hr}
}

type NearestHole struct {
	HoleID     uint    `json:"hole_id"`
	HoleNumber int     `json:"hole_number"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Distance   float64 `json:"distance"` // metres
}

// Nearest resolves the closest hole to the given coordinates, nearest-first
// limit 1. A course with no holes is an error, not an empty result.
func (s *HoleService) Nearest(courseID uint, lat, lng float64) (*NearestHole, error) {
	holes, err := s.HoleRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}
	if len(holes) == 0 {
		return nil, ErrNoHoleReturned
	}

	out := make([]NearestHole, 0, len(holes))
	for _, h := range holes {
		out = append(out, NearestHole{
			HoleID:     h.ID,
			HoleNumber: h.Number,
			Latitude:   h.Latitude,
			Longitude:  h.Longitude,
			Distance:   haversine(lat, lng, h.Latitude, h.Longitude),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return &out[0], nil
}

const earthRadiusM = 6371000

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}
