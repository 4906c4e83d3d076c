package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/llgcode/draw2d/draw2dsvg"
	"github.com/tomwagner/geodesy"
)

const (
	Size      = 1000
	GridStep  = 15 // degrees between graticule lines
	EdgeSteps = 32 // great-circle samples per polygon edge
	LineWidth = 1
)

// Warsaw, Paris, Rome, Budapest: a convex spherical polygon.
var vertices = [][2]float64{
	{52.2296, 21.0122},
	{48.8566, 2.3522},
	{41.9028, 12.4964},
	{47.4979, 19.0402},
}

func main() {
	polygon := make([]geodesy.Point, len(vertices))
	for i, v := range vertices {
		p, err := geodesy.LatLon(v[0], v[1])
		if err != nil {
			panic(err)
		}
		polygon[i] = p
	}

	centroid, err := geodesy.MeanOf(polygon)
	if err != nil {
		panic(err)
	}
	enclosed, err := centroid.EnclosedBy(polygon)
	if err != nil {
		panic(err)
	}
	fmt.Println("centroid:", centroid)
	fmt.Println("centroid enclosed:", enclosed)

	svg := draw2dsvg.NewSvg()
	svg.Width = strconv.Itoa(Size * 2)
	svg.Height = strconv.Itoa(Size)
	gc := draw2dsvg.NewGraphicContext(svg)

	fmt.Println("drawing graticule...")
	gc.SetStrokeColor(color.Gray{192})
	gc.SetLineWidth(LineWidth)
	for lat := -90 + GridStep; lat < 90; lat += GridStep {
		x0, y0 := project(float64(lat), -180)
		x1, y1 := project(float64(lat), 180)
		gc.MoveTo(x0, y0)
		gc.LineTo(x1, y1)
	}
	for lon := -180; lon <= 180; lon += GridStep {
		x0, y0 := project(-90, float64(lon))
		x1, y1 := project(90, float64(lon))
		gc.MoveTo(x0, y0)
		gc.LineTo(x1, y1)
	}
	gc.Stroke()

	fmt.Println("drawing polygon...")
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(LineWidth * 2)
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]
		for j, p := range sampleEdge(a, b) {
			x, y := project(p.Lat, p.Lon)
			if j == 0 {
				gc.MoveTo(x, y)
			} else {
				gc.LineTo(x, y)
			}
		}
	}
	gc.Stroke()

	gc.SetStrokeColor(color.RGBA{204, 0, 0, 255})
	gc.SetLineWidth(LineWidth * 2)
	x, y := project(centroid.Lat, centroid.Lon)
	gc.MoveTo(x-5, y)
	gc.LineTo(x+5, y)
	gc.MoveTo(x, y-5)
	gc.LineTo(x, y+5)
	gc.Stroke()

	fmt.Println("writing svg...")
	draw2dsvg.SaveToSvgFile("out.svg", svg)
}

// sampleEdge walks the great circle from a to b in EdgeSteps segments.
func sampleEdge(a, b geodesy.Point) []geodesy.Point {
	distance := a.DistanceTo(b)
	bearing, err := a.BearingTo(b)
	if err != nil {
		panic(err)
	}
	points := make([]geodesy.Point, 0, EdgeSteps+1)
	for i := 0; i <= EdgeSteps; i++ {
		p, err := a.Destination(bearing, distance*float64(i)/EdgeSteps)
		if err != nil {
			panic(err)
		}
		points = append(points, p)
	}
	return points
}

// project maps lat/lon onto an equirectangular canvas.
func project(lat, lon float64) (x, y float64) {
	x = (lon + 180) / 360 * Size * 2
	y = (90 - lat) / 180 * Size
	return
}
