package timezone

// TimeZone is one selectable viewing zone. UTCOffset is the nominal offset in
// hours (fractional for half-hour zones) and is display-only: conversions are
// driven by the IANA ID, which stays correct across DST transitions.
type TimeZone struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UTCOffset float64 `json:"utc_offset"`
}

// Zones is the static list of supported viewing time zones, ordered west to east.
var Zones = []TimeZone{
	{ID: "Pacific/Honolulu", Name: "Hawaii Time (UTC -10)", UTCOffset: -10},
	{ID: "America/Anchorage", Name: "Alaska Time (UTC -9)", UTCOffset: -9},
	{ID: "America/Los_Angeles", Name: "Pacific Time (UTC -8)", UTCOffset: -8},
	{ID: "America/Denver", Name: "Mountain Time (UTC -7)", UTCOffset: -7},
	{ID: "America/Chicago", Name: "Central Time (UTC -6)", UTCOffset: -6},
	{ID: "America/New_York", Name: "Eastern Time (UTC -5)", UTCOffset: -5},
	{ID: "America/Halifax", Name: "Atlantic Time (UTC -4)", UTCOffset: -4},
	{ID: "America/St_Johns", Name: "Newfoundland Time (UTC -3:30)", UTCOffset: -3.5},
	{ID: "America/Sao_Paulo", Name: "Brasilia Time (UTC -3)", UTCOffset: -3},
	{ID: "Atlantic/Azores", Name: "Azores Time (UTC -1)", UTCOffset: -1},
	{ID: "UTC", Name: "Coordinated Universal Time (UTC)", UTCOffset: 0},
	{ID: "Europe/London", Name: "London Time (UTC +0)", UTCOffset: 0},
	{ID: "Europe/Paris", Name: "Central European Time (UTC +1)", UTCOffset: 1},
	{ID: "Europe/Athens", Name: "Eastern European Time (UTC +2)", UTCOffset: 2},
	{ID: "Europe/Moscow", Name: "Moscow Time (UTC +3)", UTCOffset: 3},
	{ID: "Asia/Dubai", Name: "Gulf Time (UTC +4)", UTCOffset: 4},
	{ID: "Asia/Karachi", Name: "Pakistan Time (UTC +5)", UTCOffset: 5},
	{ID: "Asia/Kolkata", Name: "India Time (UTC +5:30)", UTCOffset: 5.5},
	{ID: "Asia/Dhaka", Name: "Bangladesh Time (UTC +6)", UTCOffset: 6},
	{ID: "Asia/Bangkok", Name: "Indochina Time (UTC +7)", UTCOffset: 7},
	{ID: "Asia/Shanghai", Name: "China Time (UTC +8)", UTCOffset: 8},
	{ID: "Asia/Tokyo", Name: "Japan Time (UTC +9)", UTCOffset: 9},
	{ID: "Australia/Sydney", Name: "Australian Eastern Time (UTC +10)", UTCOffset: 10},
	{ID: "Pacific/Auckland", Name: "New Zealand Time (UTC +12)", UTCOffset: 12},
}

// UTC is the fallback zone for unknown or empty ids.
var UTC = mustZone("UTC")

// Lookup returns the zone with the given id, or the UTC entry when the id is
// not in the catalog. Unknown zones degrade silently rather than erroring.
func Lookup(id string) TimeZone {
	for _, tz := range Zones {
		if tz.ID == id {
			return tz
		}
	}
	return UTC
}

// IsSupported reports whether id is in the catalog.
func IsSupported(id string) bool {
	for _, tz := range Zones {
		if tz.ID == id {
			return true
		}
	}
	return false
}

func mustZone(id string) TimeZone {
	for _, tz := range Zones {
		if tz.ID == id {
			return tz
		}
	}
	panic("timezone: catalog is missing " + id)
}
