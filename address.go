package faker

import (
	"math"
	"strconv"

	"github.com/mshima/faker/pkg/random"
)

// Coordinate bounds and precision used by Latitude and Longitude.
const (
	MaxLatitude         = 90.0
	MaxLongitude        = 180.0
	CoordinatePrecision = 4
)

// DefaultNearbyRadius is the radius NearbyGPSCoordinate uses for radius <= 0.
const DefaultNearbyRadius = 10.0

const (
	kmPerMile     = 1.60934
	kmPerDegree   = 40000.0 / 360.0
	nearbyScaling = 0.995
)

// Address generates postal address parts and coordinates.
type Address struct {
	f *Faker
}

// ZipCodeByState returns a postcode inside the range of the state with the
// given abbreviation. States the locale has no range for get ZipCode("").
func (a *Address) ZipCodeByState(abbr string) string {
	if format := a.f.pick("postcode_by_state", abbr); format != "" {
		return a.f.Helpers.RegexpStyleStringParse(format)
	}
	return a.ZipCode("")
}

// ZipCode fills format, or one of the locale's postcode formats when format
// is empty. '#' becomes a digit and '?' a letter.
func (a *Address) ZipCode(format string) string {
	if format == "" {
		format = a.f.pick("address", "postcode")
	}
	return a.f.Helpers.ReplaceSymbols(format)
}

// City renders one of the locale's city formats.
func (a *Address) City() string {
	if format := a.f.pick("address", "city"); format != "" {
		return a.f.Fake(format)
	}
	return a.CityName()
}

func (a *Address) CityPrefix() string { return a.f.pick("address", "city_prefix") }

func (a *Address) CitySuffix() string { return a.f.pick("address", "city_suffix") }

func (a *Address) CityName() string { return a.f.pick("address", "city_name") }

func (a *Address) StreetSuffix() string { return a.f.pick("address", "street_suffix") }

// StreetPrefix returns a street prefix such as "Rue", or "" for locales
// without them.
func (a *Address) StreetPrefix() string { return a.f.pick("address", "street_prefix") }

// StreetName renders one of the locale's street formats.
func (a *Address) StreetName() string {
	if format := a.f.pick("address", "street"); format != "" {
		return a.f.Fake(format)
	}
	return a.f.Name.LastName() + " " + a.StreetSuffix()
}

// StreetAddress returns a building number and street. With full set it
// appends a secondary address.
func (a *Address) StreetAddress(full bool) string {
	s := a.BuildingNumber() + " " + a.StreetName()
	if full {
		s += " " + a.SecondaryAddress()
	}
	return s
}

func (a *Address) BuildingNumber() string {
	return a.f.Helpers.ReplaceSymbolWithNumber(a.f.pick("address", "building_number"), 0)
}

func (a *Address) SecondaryAddress() string {
	return a.f.Helpers.ReplaceSymbolWithNumber(a.f.pick("address", "secondary_address"), 0)
}

func (a *Address) County() string { return a.f.pick("address", "county") }

func (a *Address) Country() string { return a.f.pick("address", "country") }

// CountryCode returns an ISO 3166-1 alpha-2 code, or alpha-3 when alpha3 is
// set.
func (a *Address) CountryCode(alpha3 bool) string {
	if alpha3 {
		return a.f.pick("address", "country_code_alpha_3")
	}
	return a.f.pick("address", "country_code")
}

// State returns a state name, or its abbreviation when abbr is set.
func (a *Address) State(abbr bool) string {
	if abbr {
		return a.StateAbbr()
	}
	return a.f.pick("address", "state")
}

func (a *Address) StateAbbr() string { return a.f.pick("address", "state_abbr") }

// Latitude returns a latitude in [-90, 90] with four decimals.
func (a *Address) Latitude() string {
	s, _ := a.LatitudeBetween(-MaxLatitude, MaxLatitude, CoordinatePrecision)
	return s
}

// LatitudeBetween returns a latitude in [min, max] with precision decimals.
func (a *Address) LatitudeBetween(min, max float64, precision int) (string, error) {
	return a.coordinate(min, max, precision)
}

// Longitude returns a longitude in [-180, 180] with four decimals.
func (a *Address) Longitude() string {
	s, _ := a.LongitudeBetween(-MaxLongitude, MaxLongitude, CoordinatePrecision)
	return s
}

// LongitudeBetween returns a longitude in [min, max] with precision decimals.
func (a *Address) LongitudeBetween(min, max float64, precision int) (string, error) {
	return a.coordinate(min, max, precision)
}

func (a *Address) coordinate(min, max float64, precision int) (string, error) {
	v, err := a.f.rand.Float(min, max, precision)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'f', precision, 64), nil
}

// NearbyGPSCoordinate returns a latitude and longitude at most radius away
// from (lat, lng). radius is in miles, or in kilometers when metric is set;
// for radius <= 0 it is DefaultNearbyRadius.
func (a *Address) NearbyGPSCoordinate(lat, lng, radius float64, metric bool) (string, string) {
	if radius <= 0 {
		radius = DefaultNearbyRadius
	}
	if !metric {
		radius *= kmPerMile
	}
	angle, _ := a.f.rand.Float(0, 2*math.Pi, 5)
	km, _ := a.f.rand.Float(0, radius, 3)
	degrees := km * nearbyScaling / kmPerDegree

	lat = math.Mod(lat+math.Sin(angle)*degrees, MaxLatitude)
	lng = math.Mod(lng+math.Cos(angle)*degrees, MaxLongitude)
	return strconv.FormatFloat(lat, 'f', CoordinatePrecision, 64),
		strconv.FormatFloat(lng, 'f', CoordinatePrecision, 64)
}

// Direction returns one of the eight compass directions.
func (a *Address) Direction(abbr bool) string {
	return random.Element(a.f.rand, a.directions(abbr))
}

// CardinalDirection returns north, east, south or west.
func (a *Address) CardinalDirection(abbr bool) string {
	d := a.directions(abbr)
	return random.Element(a.f.rand, d[:min(4, len(d))])
}

// OrdinalDirection returns one of the four intercardinal directions.
func (a *Address) OrdinalDirection(abbr bool) string {
	d := a.directions(abbr)
	return random.Element(a.f.rand, d[min(4, len(d)):])
}

func (a *Address) directions(abbr bool) []string {
	if abbr {
		return a.f.defs.Values("address", "direction_abbr")
	}
	return a.f.defs.Values("address", "direction")
}

func (a *Address) TimeZone() string { return a.f.pick("address", "time_zone") }
