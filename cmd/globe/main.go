package main

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/fogleman/fauxgl"
	"github.com/fogleman/gg"
	"github.com/tomwagner/geodesy"
)

const (
	Size        = 1200
	Supersample = 2

	// The hemisphere facing the camera.
	EyeLat, EyeLng = 45, -30

	GridStep   = 15 // degrees between graticule lines
	SampleStep = 2  // degrees between samples along a line

	// London to New York.
	Lat0, Lng0 = 51.5074, -0.1278
	Lat1, Lng1 = 40.7128, -74.006
	Samples    = 256
)

func main() {
	start, err := geodesy.LatLon(Lat0, Lng0)
	if err != nil {
		panic(err)
	}
	end, err := geodesy.LatLon(Lat1, Lng1)
	if err != nil {
		panic(err)
	}
	bearing, err := start.BearingTo(end)
	if err != nil {
		panic(err)
	}
	distance := start.DistanceTo(end)
	fmt.Printf("route: %.0f km at %.1f°\n", distance, bearing)

	eye, err := geodesy.LatLon(EyeLat, EyeLng)
	if err != nil {
		panic(err)
	}
	view := newView(eye, Size*Supersample)

	dc := gg.NewContext(Size*Supersample, Size*Supersample)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	fmt.Println("drawing graticule...")
	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1 * Supersample)
	for lat := -90 + GridStep; lat < 90; lat += GridStep {
		var line []geodesy.Point
		for lon := -180; lon <= 180; lon += SampleStep {
			line = append(line, mustLatLon(float64(lat), float64(lon)))
		}
		view.strokeLine(dc, line)
	}
	for lon := -180; lon < 180; lon += GridStep {
		var line []geodesy.Point
		for lat := -90; lat <= 90; lat += SampleStep {
			line = append(line, mustLatLon(float64(lat), float64(lon)))
		}
		view.strokeLine(dc, line)
	}

	fmt.Println("drawing route...")
	route := make([]geodesy.Point, 0, Samples+1)
	for i := 0; i <= Samples; i++ {
		p, err := start.Destination(bearing, distance*float64(i)/Samples)
		if err != nil {
			panic(err)
		}
		route = append(route, p)
	}
	dc.SetRGB(0.8, 0, 0)
	dc.SetLineWidth(3 * Supersample)
	view.strokeLine(dc, route)

	fmt.Println("writing png...")
	im := imaging.Resize(dc.Image(), Size, 0, imaging.Lanczos)
	gg.SavePNG("out.png", im)
}

func mustLatLon(lat, lon float64) geodesy.Point {
	p, err := geodesy.LatLon(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}

// view is an orthographic look at the unit globe from above a point.
type view struct {
	eye    geodesy.Vector
	matrix fauxgl.Matrix
	size   float64
}

func newView(above geodesy.Point, size int) *view {
	eye := above.Vector()
	matrix := fauxgl.LookAt(
		fauxgl.V(eye.X, eye.Y, eye.Z).MulScalar(2),
		fauxgl.V(0, 0, 0),
		fauxgl.V(0, 0, 1),
	)
	return &view{eye, matrix, float64(size)}
}

// project returns canvas coordinates for p and whether p is on the
// hemisphere facing the eye.
func (v *view) project(p geodesy.Point) (x, y float64, visible bool) {
	n := p.Vector()
	w := v.matrix.MulPosition(fauxgl.V(n.X, n.Y, n.Z))
	scale := v.size * 0.45
	x = v.size/2 + w.X*scale
	y = v.size/2 - w.Y*scale
	return x, y, n.Dot(v.eye) > 0
}

// strokeLine strokes the visible runs of a sampled line.
func (v *view) strokeLine(dc *gg.Context, line []geodesy.Point) {
	pen := false
	for _, p := range line {
		x, y, visible := v.project(p)
		if !visible {
			if pen {
				dc.Stroke()
				pen = false
			}
			continue
		}
		if !pen {
			dc.NewSubPath()
			dc.MoveTo(x, y)
			pen = true
		} else {
			dc.LineTo(x, y)
		}
	}
	if pen {
		dc.Stroke()
	}
}
