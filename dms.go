package geodesy

import (
	"fmt"
	"math"
)

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func wrap360(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Format selects a sexagesimal rendering of a degree value.
type Format int

const (
	FormatD   Format = iota // decimal degrees: 51.4778°
	FormatDM                // degrees and decimal minutes: 51°28.67′
	FormatDMS               // degrees, minutes and seconds: 51°28′40″
)

// FormatDegrees renders the magnitude of a degree value in the given
// format, with places decimal places on the final component. The sign
// is dropped; FormatLat and FormatLon attach a hemisphere suffix
// instead.
func FormatDegrees(value float64, format Format, places int) (string, error) {
	if !isFinite(value) {
		return "", fmt.Errorf("value %v: %w", value, ErrInvalidArgument)
	}
	if places < 0 {
		places = 0
	}
	v := math.Abs(value)
	switch format {
	case FormatD:
		return fmt.Sprintf("%.*f°", places, v), nil
	case FormatDM:
		d := math.Floor(v)
		m := roundTo((v-d)*60, places)
		if m == 60 {
			m = 0
			d++
		}
		return fmt.Sprintf("%.0f°%s′", d, padded(m, places)), nil
	case FormatDMS:
		d := math.Floor(v)
		m := math.Floor((v - d) * 60)
		s := roundTo((v-d)*3600-m*60, places)
		if s == 60 {
			s = 0
			m++
		}
		if m == 60 {
			m = 0
			d++
		}
		return fmt.Sprintf("%.0f°%02.0f′%s″", d, m, padded(s, places)), nil
	default:
		return "", fmt.Errorf("format %d: %w", format, ErrInvalidArgument)
	}
}

// FormatLat renders a latitude with an N or S suffix.
func FormatLat(lat float64, format Format, places int) (string, error) {
	s, err := FormatDegrees(lat, format, places)
	if err != nil {
		return "", err
	}
	if lat < 0 {
		return s + "S", nil
	}
	return s + "N", nil
}

// FormatLon renders a longitude with an E or W suffix.
func FormatLon(lon float64, format Format, places int) (string, error) {
	s, err := FormatDegrees(lon, format, places)
	if err != nil {
		return "", err
	}
	if lon < 0 {
		return s + "W", nil
	}
	return s + "E", nil
}

// FormatBearing renders a compass bearing wrapped into [0, 360).
func FormatBearing(bearing float64, format Format, places int) (string, error) {
	return FormatDegrees(wrap360(bearing), format, places)
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// padded renders a minute or second component zero-padded to two
// integer digits.
func padded(x float64, places int) string {
	width := 2
	if places > 0 {
		width = places + 3
	}
	return fmt.Sprintf("%0*.*f", width, places, x)
}
