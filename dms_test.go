package geodesy

import (
	"errors"
	"math"
	"testing"
)

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(180); got != math.Pi {
		t.Errorf("Radians(180) = %v, want π", got)
	}
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("Degrees(π/2) = %v, want 90", got)
	}
	for _, d := range []float64{-270, -1, 0, 0.5, 33.3, 359, 720} {
		if got := Degrees(Radians(d)); math.Abs(got-d) > 1e-12 {
			t.Errorf("Degrees(Radians(%v)) = %v", d, got)
		}
	}
}

func TestFormatDegrees(t *testing.T) {
	cases := []struct {
		value  float64
		format Format
		places int
		want   string
	}{
		{51.4778, FormatD, 4, "51.4778°"},
		{51.4778, FormatD, 0, "51°"},
		{51.4778, FormatDM, 2, "51°28.67′"},
		{51.4778, FormatDMS, 0, "51°28′40″"},
		{51.4778, FormatDMS, 2, "51°28′40.08″"},
		{-0.5, FormatDMS, 0, "0°30′00″"},
		{0, FormatDMS, 0, "0°00′00″"},
		// Rounding carries across components.
		{59.9999999, FormatDMS, 0, "60°00′00″"},
		{29.9999999, FormatDM, 2, "30°00.00′"},
	}
	for _, c := range cases {
		got, err := FormatDegrees(c.value, c.format, c.places)
		if err != nil {
			t.Errorf("FormatDegrees(%v, %v, %d): %v", c.value, c.format, c.places, err)
			continue
		}
		if got != c.want {
			t.Errorf("FormatDegrees(%v, %v, %d) = %q, want %q", c.value, c.format, c.places, got, c.want)
		}
	}
}

func TestFormatDegreesInvalid(t *testing.T) {
	if _, err := FormatDegrees(math.NaN(), FormatD, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NaN err = %v, want ErrInvalidArgument", err)
	}
	if _, err := FormatDegrees(1.5, Format(99), 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown format err = %v, want ErrInvalidArgument", err)
	}
}

func TestFormatLatLon(t *testing.T) {
	if got, _ := FormatLat(-33.8688, FormatD, 2); got != "33.87°S" {
		t.Errorf("FormatLat = %q", got)
	}
	if got, _ := FormatLat(51.4778, FormatD, 2); got != "51.48°N" {
		t.Errorf("FormatLat = %q", got)
	}
	if got, _ := FormatLon(151.2093, FormatD, 1); got != "151.2°E" {
		t.Errorf("FormatLon = %q", got)
	}
	if got, _ := FormatLon(-0.0015, FormatDMS, 0); got != "0°00′05″W" {
		t.Errorf("FormatLon = %q", got)
	}
}

func TestFormatBearing(t *testing.T) {
	if got, _ := FormatBearing(-45, FormatD, 0); got != "315°" {
		t.Errorf("FormatBearing(-45) = %q", got)
	}
	if got, _ := FormatBearing(360, FormatD, 0); got != "0°" {
		t.Errorf("FormatBearing(360) = %q", got)
	}
	if _, err := FormatBearing(math.Inf(1), FormatD, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("infinite bearing err = %v, want ErrInvalidArgument", err)
	}
}

func TestPointString(t *testing.T) {
	p := point(t, 51.4778, -0.0015)
	if got := p.String(); got != "51°28′40″N, 0°00′05″W" {
		t.Errorf("String = %q", got)
	}
}
