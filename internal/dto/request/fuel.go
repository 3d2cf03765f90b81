package request

// NearbyRequest is the parsed query of GET /fuel/prices.
type NearbyRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	RaioKm    float64 `json:"raio_km" validate:"gte=0"`
}
