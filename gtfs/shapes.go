package gtfs

import (
	"math"
)

// Shape is a polyline with its points in ascending sequence order.
type Shape struct {
	ID     string
	Points []ShapePoint
}

// LineString is a GeoJSON LineString geometry of a shape. Coordinates are
// [longitude, latitude] pairs, per the GeoJSON convention.
type LineString struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// FindShape returns the shape with the given id.
func (f *Feed) FindShape(id string) (Shape, error) {
	points, ok := f.Shapes[id]
	if !ok {
		return Shape{}, notFound("shape", id)
	}
	return Shape{ID: id, Points: points}, nil
}

// ShapeForRoute returns the shape of the first of a route's trips that
// carries a shape id.
func (f *Feed) ShapeForRoute(routeID string) (Shape, error) {
	if _, ok := f.routesByID[routeID]; !ok {
		return Shape{}, notFound("route", routeID)
	}
	for _, trip := range f.tripsByRoute[routeID] {
		if trip.ShapeID == "" {
			continue
		}
		return f.FindShape(trip.ShapeID)
	}
	return Shape{}, notFound("shape for route", routeID)
}

// GeoRoute returns a route's shape as a GeoJSON LineString.
func (f *Feed) GeoRoute(routeID string) (*LineString, error) {
	shape, err := f.ShapeForRoute(routeID)
	if err != nil {
		return nil, err
	}
	line := &LineString{
		ID:          shape.ID,
		Type:        "LineString",
		Coordinates: make([][2]float64, 0, len(shape.Points)),
	}
	for _, p := range shape.Points {
		line.Coordinates = append(line.Coordinates, [2]float64{p.Location.Longitude, p.Location.Latitude})
	}
	return line, nil
}

// CumulativeKilometers returns the running distance along the shape at each
// point. Feed-supplied shape_dist_traveled values are used when every point
// carries one; otherwise the distances are summed over haversine segment
// lengths.
func (s Shape) CumulativeKilometers() []float64 {
	cum := make([]float64, len(s.Points))
	if len(s.Points) == 0 {
		return cum
	}

	supplied := true
	for _, p := range s.Points {
		if p.DistTraveled == nil {
			supplied = false
			break
		}
	}
	if supplied {
		for i, p := range s.Points {
			cum[i] = *p.DistTraveled
		}
		return cum
	}

	for i := 1; i < len(s.Points); i++ {
		a, b := s.Points[i-1].Location, s.Points[i].Location
		cum[i] = cum[i-1] + haversineKM(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	}
	return cum
}

// LengthKilometers returns the total haversine length of the shape.
func (s Shape) LengthKilometers() float64 {
	cum := s.CumulativeKilometers()
	if len(cum) == 0 {
		return 0
	}
	return cum[len(cum)-1]
}

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
