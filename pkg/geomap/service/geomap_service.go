package service

// Marker is one block pin on the map; the non-coordinate fields feed
// the popup.
type Marker struct {
	BlockID     string  `json:"block_id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	AreaHa      string  `json:"area_ha"`
	StatusTanam string  `json:"planting_status"`
	Kesuburan   string  `json:"fertility"`
	Lokasi      string  `json:"location"`
}

// MapView is the full payload for the map page. Placeholder is true
// when the block table was empty and demo pins were substituted.
type MapView struct {
	Placeholder bool     `json:"placeholder"`
	CenterLat   float64  `json:"center_lat"`
	CenterLon   float64  `json:"center_lon"`
	Markers     []Marker `json:"markers"`
}

type GeomapService interface {
	// Markers returns block pins, optionally filtered by planting
	// status and fertility category. Blocks without usable
	// coordinates get a jittered position near the configured center.
	Markers(status, fertility string) (MapView, error)
}
