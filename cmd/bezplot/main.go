// Command bezplot renders a cubic Bézier curve to an image: the curve itself,
// its control polygon, and its exact bounding box.
package main

import (
	"image/color"

	"github.com/tdewolff/argp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/stroke-go/bezier"
)

type Plot struct {
	Steps  int    `short:"n" default:"1000" desc:"Number of curve samples"`
	Output string `short:"o" default:"cubic_bezier.png" desc:"Output image file"`
}

func main() {
	cmd := argp.NewCmd(&Plot{}, "Plot a cubic Bézier curve with its control polygon and bounding box")
	cmd.Parse()
	cmd.PrintHelp()
}

func (cmd *Plot) Run() error {
	curve := bezier.CubicBezier[bezier.Point2]{
		Start: bezier.Pt2(0, 1.77),
		Ctrl1: bezier.Pt2(1.1, -1),
		Ctrl2: bezier.Pt2(4.3, 3),
		End:   bezier.Pt2(3.2, -4),
	}
	hull := []bezier.Point2{curve.Start, curve.Ctrl1, curve.Ctrl2, curve.End}

	p := plot.New()
	p.Title.Text = "Cubic Bézier curve"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	samples := make(plotter.XYs, cmd.Steps+1)
	for i := range samples {
		pt := curve.EvalCasteljau(float64(i) / float64(cmd.Steps))
		samples[i].X = pt.Axis(0)
		samples[i].Y = pt.Axis(1)
	}
	curveLine, err := plotter.NewLine(samples)
	if err != nil {
		return err
	}
	curveLine.Color = color.RGBA{B: 255, A: 255}
	p.Add(curveLine)
	p.Legend.Add("curve", curveLine)

	hullXYs := make(plotter.XYs, len(hull))
	for i, pt := range hull {
		hullXYs[i].X = pt.Axis(0)
		hullXYs[i].Y = pt.Axis(1)
	}
	hullLine, hullPoints, err := plotter.NewLinePoints(hullXYs)
	if err != nil {
		return err
	}
	hullLine.Color = color.RGBA{R: 196, G: 196, B: 196, A: 255}
	hullPoints.Color = color.RGBA{R: 255, A: 255}
	p.Add(hullLine, hullPoints)
	p.Legend.Add("control polygon", hullLine, hullPoints)

	bounds := curve.BoundingBox()
	box := plotter.XYs{
		{X: bounds[0].Min, Y: bounds[1].Min},
		{X: bounds[0].Max, Y: bounds[1].Min},
		{X: bounds[0].Max, Y: bounds[1].Max},
		{X: bounds[0].Min, Y: bounds[1].Max},
		{X: bounds[0].Min, Y: bounds[1].Min},
	}
	boxLine, err := plotter.NewLine(box)
	if err != nil {
		return err
	}
	boxLine.Color = color.RGBA{G: 160, A: 255}
	boxLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(boxLine)
	p.Legend.Add("bounding box", boxLine)

	return p.Save(8*vg.Inch, 6*vg.Inch, cmd.Output)
}
