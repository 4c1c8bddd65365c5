package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneGatewayLocation(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the full timezone data set")
	}

	gateway, err := NewTimezoneGateway()
	require.NoError(t, err)

	tests := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{name: "paris", lat: 48.8566, lon: 2.3522, want: "Europe/Paris"},
		{name: "berlin", lat: 52.52, lon: 13.405, want: "Europe/Berlin"},
		{name: "tokyo", lat: 35.6762, lon: 139.6503, want: "Asia/Tokyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location, err := gateway.Location(tt.lat, tt.lon)
			require.NoError(t, err)
			assert.Equal(t, tt.want, location.String())
		})
	}
}

func TestUTCTimezoneGateway(t *testing.T) {
	location, err := UTCTimezoneGateway{}.Location(48.8566, 2.3522)
	require.NoError(t, err)
	assert.Equal(t, "UTC", location.String())
}
