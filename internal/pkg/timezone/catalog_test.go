package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownZone(t *testing.T) {
	tz := Lookup("Asia/Kolkata")

	assert.Equal(t, "Asia/Kolkata", tz.ID)
	assert.Equal(t, 5.5, tz.UTCOffset)
}

func TestLookup_UnknownZoneFallsBackToUTC(t *testing.T) {
	assert.Equal(t, UTC, Lookup("Atlantis/Sunken_City"))
	assert.Equal(t, UTC, Lookup(""))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("America/New_York"))
	assert.False(t, IsSupported("America/New_Amsterdam"))
}

func TestZones_AllResolveInHostDatabase(t *testing.T) {
	for _, tz := range Zones {
		_, err := time.LoadLocation(tz.ID)
		require.NoError(t, err, tz.ID)
	}
}
