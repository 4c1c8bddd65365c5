package geo

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// TimezoneGateway finds the local time zone of a coordinate
type TimezoneGateway interface {
	// Location returns the IANA location covering the coordinate
	Location(latitude, longitude float64) (*time.Location, error)
}

type tzfTimezoneGateway struct {
	finder tzf.F
}

var (
	finder     tzf.F
	finderErr  error
	finderOnce sync.Once
)

// NewTimezoneGateway returns a gateway backed by the tzf polygon data.
// The finder holds the whole data set in memory, so it is built once per process.
func NewTimezoneGateway() (TimezoneGateway, error) {
	finderOnce.Do(func() {
		finder, finderErr = tzf.NewDefaultFinder()
	})
	if finderErr != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", finderErr)
	}
	return &tzfTimezoneGateway{finder: finder}, nil
}

func (g *tzfTimezoneGateway) Location(latitude, longitude float64) (*time.Location, error) {
	name := g.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return nil, fmt.Errorf("no timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", name, err)
	}
	return location, nil
}

// UTCTimezoneGateway always answers UTC; used when the tzf data cannot be loaded.
type UTCTimezoneGateway struct{}

func (UTCTimezoneGateway) Location(float64, float64) (*time.Location, error) {
	return time.UTC, nil
}
