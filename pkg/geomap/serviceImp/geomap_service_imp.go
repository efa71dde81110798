package serviceImp

import (
	"fmt"
	"math/rand"

	"jagung/entities"
	"jagung/pkg/datastore/repository"
	"jagung/pkg/geomap/service"
	"jagung/pkg/tabular"
)

type geoSvc struct {
	store     repository.TableStore
	centerLat float64
	centerLon float64
}

func New(store repository.TableStore, centerLat, centerLon float64) service.GeomapService {
	return &geoSvc{store: store, centerLat: centerLat, centerLon: centerLon}
}

func (s *geoSvc) Markers(status, fertility string) (service.MapView, error) {
	blok, err := s.store.Load(entities.TableBlok)
	if err != nil {
		return service.MapView{}, err
	}

	view := service.MapView{Markers: []service.Marker{}}
	if blok.Len() == 0 {
		view.Placeholder = true
		blok = s.placeholderBlocks()
	}

	for i := 0; i < blok.Len(); i++ {
		if status != "" && blok.Cell(i, entities.ColStatusTanam) != status {
			continue
		}
		if fertility != "" && blok.Cell(i, entities.ColKesuburan) != fertility {
			continue
		}
		lat, okLat := tabular.ParseNumber(blok.Cell(i, entities.ColLatitude))
		lon, okLon := tabular.ParseNumber(blok.Cell(i, entities.ColLongitude))
		if !okLat || !okLon {
			// Scatter unplaced blocks around the configured center so
			// they still show up on the map.
			lat = s.centerLat + (rand.Float64()-0.5)*0.02
			lon = s.centerLon + (rand.Float64()-0.5)*0.02
		}
		view.Markers = append(view.Markers, service.Marker{
			BlockID:     blok.Cell(i, entities.ColBlokID),
			Lat:         lat,
			Lon:         lon,
			AreaHa:      blok.Cell(i, entities.ColLuas),
			StatusTanam: blok.Cell(i, entities.ColStatusTanam),
			Kesuburan:   blok.Cell(i, entities.ColKesuburan),
			Lokasi:      blok.Cell(i, entities.ColLokasi),
		})
	}

	view.CenterLat, view.CenterLon = s.centerLat, s.centerLon
	if len(view.Markers) > 0 {
		var sumLat, sumLon float64
		for _, m := range view.Markers {
			sumLat += m.Lat
			sumLon += m.Lon
		}
		view.CenterLat = sumLat / float64(len(view.Markers))
		view.CenterLon = sumLon / float64(len(view.Markers))
	}
	return view, nil
}

// placeholderBlocks mirrors the demo pins shown before any block has
// been registered.
func (s *geoSvc) placeholderBlocks() tabular.Table {
	t := tabular.New(entities.Schemas[entities.TableBlok]...)
	for i := 0; i < 6; i++ {
		t.Append([]string{
			fmt.Sprintf("B%02d", i+1),
			fmt.Sprintf("%.2f", 1.8+float64(i)*0.4),
			"Tambahrejo, Blora",
			fmt.Sprintf("%f", s.centerLat+float64(i)*0.001),
			fmt.Sprintf("%f", s.centerLon+float64(i)*0.001),
			"6.7",
			"",
			"Tinggi",
			"Tumbuh",
			"",
		})
	}
	return t
}
