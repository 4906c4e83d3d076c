package main

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/fogleman/maps"
	"github.com/tomwagner/geodesy"
)

const (
	// Land's End
	Lat0, Lng0 = 50.066389, -5.714722
	// John o' Groats
	Lat1, Lng1 = 58.643889, -3.07

	Size        = 1600
	Supersample = 2
	Padding     = 80
	Samples     = 256
	LineWidth   = 3
	MarkRadius  = 8
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

	distance := start.DistanceTo(end)
	bearing, err := start.BearingTo(end)
	if err != nil {
		panic(err)
	}
	mid, err := start.MidpointTo(end)
	if err != nil {
		panic(err)
	}
	fmt.Printf("distance: %.1f km\n", distance)
	fmt.Printf("initial bearing: %.1f°\n", bearing)
	fmt.Println("midpoint:", mid)

	fmt.Println("sampling route...")
	route := make([]geodesy.Point, 0, Samples+1)
	for i := 0; i <= Samples; i++ {
		p, err := start.Destination(bearing, distance*float64(i)/Samples)
		if err != nil {
			panic(err)
		}
		route = append(route, p)
	}

	fmt.Println("rendering image...")
	s := Supersample
	im := renderRoute(route, mid, Size*s, Padding*s, LineWidth*s, MarkRadius*s)
	out := imaging.Resize(im, Size, 0, imaging.Lanczos)
	gg.SavePNG("out.png", out)
}

func renderRoute(route []geodesy.Point, mid geodesy.Point, size, pad, lw, mr int) image.Image {
	proj := maps.NewMercatorProjection()
	points := make([]maps.Point, len(route))
	for i, p := range route {
		points[i] = proj.Project(maps.Point{X: p.Lon, Y: p.Lat})
	}
	m := proj.Project(maps.Point{X: mid.Lon, Y: mid.Lat})

	x0 := points[0].X
	x1 := points[0].X
	y0 := points[0].Y
	y1 := points[0].Y
	for _, p := range points {
		if p.X < x0 {
			x0 = p.X
		}
		if p.X > x1 {
			x1 = p.X
		}
		if p.Y < y0 {
			y0 = p.Y
		}
		if p.Y > y1 {
			y1 = p.Y
		}
	}
	pw := x1 - x0
	ph := y1 - y0
	sx := float64(size-pad*2) / pw
	sy := float64(size-pad*2) / ph
	scale := math.Min(sx, sy)
	dc := gg.NewContext(int(pw*scale)+pad*2, int(ph*scale)+pad*2)
	dc.InvertY()
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Translate(float64(pad), float64(pad))
	dc.Scale(scale, scale)
	dc.Translate(-x0, -y0)
	dc.NewSubPath()
	for _, p := range points {
		dc.LineTo(p.X, p.Y)
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(float64(lw))
	dc.Stroke()
	for _, p := range []maps.Point{points[0], points[len(points)-1], m} {
		dc.DrawCircle(p.X, p.Y, float64(mr)/scale)
	}
	dc.SetRGB(0.8, 0, 0)
	dc.Fill()
	return dc.Image()
}
