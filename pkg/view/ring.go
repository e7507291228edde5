package view

import (
	"math"

	"github.com/benefique/cfo-times/pkg/format"
)

const (
	defaultRingMax  = 100
	defaultRingSize = 80
	ringStroke      = 8
	ringColor       = "#10b981"
)

type RingProps struct {
	Value    float64
	Max      float64 // defaults to 100
	Size     int     // defaults to 80
	Label    string
	Sublabel string
}

// Ring is a full-circle progress indicator.
type Ring struct {
	Value         string
	Label         string
	Sublabel      string
	Percent       float64
	Size          int
	StrokeWidth   int
	Center        string
	Radius        string
	Circumference string
	DashOffset    string
	Color         string
}

func NewRing(p RingProps) Ring {
	maxValue := p.Max
	if maxValue == 0 {
		maxValue = defaultRingMax
	}
	size := p.Size
	if size <= 0 {
		size = defaultRingSize
	}

	pct := format.ClampedPercent(p.Value, maxValue)
	radius := float64(size-ringStroke) / 2
	circumference := 2 * math.Pi * radius

	return Ring{
		Value:         format.Number(p.Value),
		Label:         p.Label,
		Sublabel:      p.Sublabel,
		Percent:       pct,
		Size:          size,
		StrokeWidth:   ringStroke,
		Center:        coord(float64(size) / 2),
		Radius:        coord(radius),
		Circumference: coord(circumference),
		DashOffset:    coord(circumference - pct/100*circumference),
		Color:         ringColor,
	}
}
