package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/gateway/db"
	"meteo-api/internal/domain/model"
)

func newUseCase(t *testing.T, stations []entity.Station) UseCase {
	t.Helper()
	gateway, err := db.NewMemoryStationGateway(stations)
	require.NoError(t, err)
	return NewStationUseCase(5, gateway)
}

func stationIDs(stations []entity.Station) []string {
	out := make([]string, 0, len(stations))
	for _, s := range stations {
		out = append(out, s.ID)
	}
	return out
}

func nearbyIDs(stations []entity.NearbyStation) []string {
	out := make([]string, 0, len(stations))
	for _, s := range stations {
		out = append(out, s.ID)
	}
	return out
}

func float(v float64) *float64 {
	return &v
}

func TestHaversineDistance(t *testing.T) {
	paris := entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	lyon := entity.Coordinate{Latitude: 45.75, Longitude: 4.85}
	london := entity.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	assert.InDelta(t, 0, HaversineDistance(paris, paris), 1e-9)
	assert.InDelta(t, 393.4, HaversineDistance(paris, lyon), 0.5)
	assert.InDelta(t, 343.6, HaversineDistance(paris, london), 0.5)
	assert.InDelta(t, HaversineDistance(paris, lyon), HaversineDistance(lyon, paris), 1e-9)

	// a quarter of the meridian
	pole := entity.Coordinate{Latitude: 90, Longitude: 0}
	equator := entity.Coordinate{Latitude: 0, Longitude: 0}
	assert.InDelta(t, 10007.5, HaversineDistance(equator, pole), 0.5)
}

func TestListStations(t *testing.T) {
	uc := newUseCase(t, db.DefaultStations())

	assert.Len(t, uc.ListStations(""), len(db.DefaultStations()))

	france := uc.ListStations("FR")
	require.NotEmpty(t, france)
	assert.Equal(t, "FRPAR", france[0].ID)
	assert.Equal(t, "FRLYS", france[1].ID)
	for _, s := range france {
		assert.Equal(t, "FR", s.Country)
	}

	assert.Empty(t, uc.ListStations("ZZ"))
}

func TestFindStationByID(t *testing.T) {
	uc := newUseCase(t, db.DefaultStations())

	station, err := uc.FindStationByID("FRLYS")
	require.NoError(t, err)
	assert.Equal(t, "Lyon", station.Name)

	_, err = uc.FindStationByID("UNKNOWN")
	assert.ErrorIs(t, err, model.ErrStationNotFound)
}

func TestSearchStationsByName(t *testing.T) {
	uc := newUseCase(t, db.DefaultStations())

	tests := []struct {
		name    string
		query   string
		want    []string
		wantErr error
	}{
		{name: "case insensitive prefix", query: "par", want: []string{"FRPAR"}},
		{name: "upper case", query: "PARIS", want: []string{"FRPAR"}},
		{name: "inner substring", query: "yo", want: []string{"FRLYS"}},
		{name: "accented query", query: "Genè", want: []string{"CHGVA"}},
		{name: "accented name", query: "zürich", want: []string{"CHZRH"}},
		{name: "accented letter only", query: "é", want: []string{"FRORY", "CAMTL"}},
		{name: "upper case accented letter", query: "É", want: []string{"FRORY", "CAMTL"}},
		{name: "grave accent is a different letter", query: "è", want: []string{"CHGVA"}},
		{name: "accents are not folded", query: "zurich", wantErr: model.ErrStationNotFound},
		{name: "unaccented query does not match accented name", query: "orleans", wantErr: model.ErrStationNotFound},
		{name: "several matches keep order", query: "on", want: []string{"FRLYS", "GBLON", "CAMTL"}},
		{name: "no match", query: "atlantis", wantErr: model.ErrStationNotFound},
		{name: "blank", query: "  ", wantErr: model.ErrMissingParameters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stations, err := uc.SearchStationsByName(tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stationIDs(stations))
		})
	}
}

func TestResolveCoordinates(t *testing.T) {
	uc := newUseCase(t, db.DefaultStations())

	tests := []struct {
		name      string
		stationID string
		lat       *float64
		lon       *float64
		want      entity.Coordinate
		wantErr   error
	}{
		{name: "station", stationID: "FRPAR", want: entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522}},
		{name: "station wins over coordinates", stationID: "FRLYS", lat: float(10), lon: float(10), want: entity.Coordinate{Latitude: 45.75, Longitude: 4.85}},
		{name: "coordinates", lat: float(-33.86), lon: float(151.2), want: entity.Coordinate{Latitude: -33.86, Longitude: 151.2}},
		{name: "boundaries", lat: float(-90), lon: float(180), want: entity.Coordinate{Latitude: -90, Longitude: 180}},
		{name: "unknown station", stationID: "NOPE", lat: float(1), lon: float(1), wantErr: model.ErrStationNotFound},
		{name: "nothing", wantErr: model.ErrMissingParameters},
		{name: "only lat", lat: float(1), wantErr: model.ErrMissingParameters},
		{name: "only lon", lon: float(1), wantErr: model.ErrMissingParameters},
		{name: "latitude out of range", lat: float(91), lon: float(0), wantErr: model.ErrInvalidParameter},
		{name: "longitude out of range", lat: float(0), lon: float(-180.5), wantErr: model.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 2; i++ {
				coordinate, err := uc.ResolveCoordinates(tt.stationID, tt.lat, tt.lon)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, coordinate)
			}
		})
	}
}

func TestFindNearbyFromParis(t *testing.T) {
	uc := newUseCase(t, db.DefaultStations())

	nearby, err := uc.FindNearby(entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)

	require.Len(t, nearby, 5)
	assert.Equal(t, "FRPAR", nearby[0].ID)
	assert.InDelta(t, 0, nearby[0].DistanceKm, 1e-9)
	assert.Equal(t, []string{"FRPAR", "FRORY", "FRLIL", "BEBRU", "FRNTE"}, nearbyIDs(nearby))

	for i := 1; i < len(nearby); i++ {
		assert.LessOrEqual(t, nearby[i-1].DistanceKm, nearby[i].DistanceKm)
	}
}

func TestFindNearbyEveryStationRanksItselfFirst(t *testing.T) {
	uc := newUseCase(t, db.DefaultStations())

	for _, s := range db.DefaultStations() {
		nearby, err := uc.FindNearby(s.Coordinate())
		require.NoError(t, err)
		assert.Equal(t, s.ID, nearby[0].ID)
		assert.InDelta(t, 0, nearby[0].DistanceKm, 1e-6)
	}
}

func TestFindNearbyTiesKeepRegistryOrder(t *testing.T) {
	uc := newUseCase(t, []entity.Station{
		{ID: "EAST", Lat: 0, Lon: 1},
		{ID: "WEST", Lat: 0, Lon: -1},
		{ID: "FAR", Lat: 0, Lon: 5},
	})

	nearby, err := uc.FindNearby(entity.Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, []string{"EAST", "WEST", "FAR"}, nearbyIDs(nearby))
}

func TestFindNearbySmallRegistry(t *testing.T) {
	uc := newUseCase(t, []entity.Station{
		{ID: "LYS", Lat: 45.75, Lon: 4.85},
		{ID: "PAR", Lat: 48.8566, Lon: 2.3522},
	})

	nearby, err := uc.FindNearby(entity.Coordinate{Latitude: 49, Longitude: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"PAR", "LYS"}, nearbyIDs(nearby))
}

func TestFindNearbyRejectsInvalidCoordinate(t *testing.T) {
	uc := newUseCase(t, db.DefaultStations())

	_, err := uc.FindNearby(entity.Coordinate{Latitude: 120})
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}
