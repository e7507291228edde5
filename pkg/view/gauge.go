package view

import (
	"fmt"
	"math"

	"github.com/benefique/cfo-times/pkg/format"
	"github.com/benefique/cfo-times/pkg/models/domain"
)

const (
	defaultGaugeSize = 120
	gaugeStroke      = 12
)

type GaugeProps struct {
	Value  float64
	Max    float64
	Label  string
	Status domain.Status
	Size   int
}

// Gauge is a semicircular meter.
type Gauge struct {
	Label         string
	Status        domain.Status
	Percent       float64
	Color         string
	Value         string
	Width         int
	Height        int
	StrokeWidth   int
	ArcPath       string
	Circumference string
	DashOffset    string
	CenterX       string
	ValueY        string
	LabelY        string
}

func NewGauge(p GaugeProps) Gauge {
	size := p.Size
	if size <= 0 {
		size = defaultGaugeSize
	}

	pct := format.ClampedPercent(p.Value, p.Max)
	half := float64(size) / 2
	radius := float64(size-gaugeStroke) / 2
	circumference := radius * math.Pi
	offset := circumference - pct/100*circumference

	return Gauge{
		Label:       p.Label,
		Status:      p.Status,
		Percent:     pct,
		Color:       format.GaugeColor(p.Status),
		Value:       format.Compact(p.Value),
		Width:       size,
		Height:      size/2 + 20,
		StrokeWidth: gaugeStroke,
		ArcPath: fmt.Sprintf("M %s %s A %s %s 0 0 1 %s %s",
			coord(gaugeStroke/2), coord(half),
			coord(radius), coord(radius),
			coord(float64(size)-gaugeStroke/2), coord(half)),
		Circumference: coord(circumference),
		DashOffset:    coord(offset),
		CenterX:       coord(half),
		ValueY:        coord(half - 5),
		LabelY:        coord(half + 12),
	}
}
