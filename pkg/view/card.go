package view

import (
	"math"

	"github.com/benefique/cfo-times/pkg/format"
	"github.com/benefique/cfo-times/pkg/models/domain"
)

type MetricCardProps struct {
	Title     string
	Value     string
	Subtext   string
	Status    domain.Status
	Trend     *float64 // percent change, nil hides the indicator
	Explainer string
}

// MetricCard displays a headline value with an optional trend pill.
//
// The trend direction is a pure sign check: a negative trend is always styled
// as "down" even for metrics where a decrease is desirable.
type MetricCard struct {
	Title     string
	Value     string
	Subtext   string
	Status    domain.Status
	Explainer string
	Palette   format.Palette
	HasTrend  bool
	TrendUp   bool
	TrendText string
	TrendCSS  string
}

func NewMetricCard(p MetricCardProps) MetricCard {
	card := MetricCard{
		Title:     p.Title,
		Value:     p.Value,
		Subtext:   p.Subtext,
		Status:    p.Status,
		Explainer: p.Explainer,
		Palette:   format.StatusPalette(p.Status),
	}

	if p.Trend != nil {
		card.HasTrend = true
		card.TrendUp = *p.Trend >= 0
		arrow := "↓"
		card.TrendCSS = "bg-red-100 text-red-700"
		if card.TrendUp {
			arrow = "↑"
			card.TrendCSS = "bg-emerald-100 text-emerald-700"
		}
		card.TrendText = arrow + " " + format.Percent(math.Abs(*p.Trend))
	}

	return card
}

// Trend is a helper for literal trend values.
func Trend(v float64) *float64 {
	return &v
}
