package report

import (
	"strings"
	"testing"

	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/models/domain/domaintest"
	"github.com/benefique/cfo-times/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, mutate func(*domain.Snapshot)) *Page {
	t.Helper()
	in := domaintest.Titan()
	if mutate != nil {
		mutate(&in)
	}
	s, err := domain.NewSnapshot(in)
	require.NoError(t, err)
	page, err := Build(s)
	require.NoError(t, err)
	return page
}

func TestBuild_NilSnapshot(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrNilSnapshot)
}

func TestBuild_SectionOrder(t *testing.T) {
	page := build(t, nil)

	keys := make([]string, 0, 7)
	for _, s := range page.Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{
		KeyBigPicture, KeyCashHealth, KeyRevenue, KeyDebtCoverage,
		KeyRuleOf40, KeyBusinessUnits, KeyActionItems,
	}, keys)
}

func TestBuild_Header(t *testing.T) {
	h := build(t, nil).Header

	assert.Equal(t, "January 24, 2026", h.ReportDate)
	assert.Equal(t, "January Progress", h.MonthLabel)
	assert.Equal(t, 77, h.Progress)
	assert.Equal(t, "77% complete", h.ProgressText)
	assert.Contains(t, h.DayText, "Day 24 of 31")
}

func TestBuild_CashHealth(t *testing.T) {
	cash := build(t, nil).Cash

	require.Len(t, cash.Cards, 3)
	onHand := cash.Cards[0]
	assert.Equal(t, "Cash on Hand", onHand.Title)
	assert.Equal(t, "$193K", onHand.Value)
	assert.True(t, onHand.HasTrend)
	assert.True(t, onHand.TrendUp)
	assert.Equal(t, "↑ 38%", onHand.TrendText)
	assert.Equal(t, "Combined both entities", onHand.Subtext)

	assert.Equal(t, "50 days", cash.Cards[1].Value)
	assert.Equal(t, domain.StatusGreen, cash.Cards[1].Status)
	assert.Equal(t, "$37K", cash.Cards[2].Value)

	assert.Equal(t, []string{"Dec 27", "Jan 3", "Jan 10", "Jan 17", "Jan 24"}, cash.Chart.Labels)
	require.Len(t, cash.Chart.Datasets, 1)
	assert.Equal(t, []float64{166675, 119415, 188960, 179300, 193031}, cash.Chart.Datasets[0].Values)

	assert.Equal(t, ChangeCaption{Arrow: "↑", Amount: "$53K", Since: "since Dec 27", CSS: "text-emerald-600"}, cash.Caption)
}

func TestBuild_CashHealth_Decline(t *testing.T) {
	cash := build(t, func(s *domain.Snapshot) {
		s.Cash.Change = -53113
		s.Cash.ChangePct = -27.5
		s.Cash.DaysOnHand = 20
	}).Cash

	assert.False(t, cash.Cards[0].TrendUp)
	assert.Equal(t, "↓ 27.5%", cash.Cards[0].TrendText)
	assert.Equal(t, domain.StatusYellow, cash.Cards[0].Status)
	assert.Equal(t, domain.StatusRed, cash.Cards[1].Status)
	assert.Equal(t, "↓", cash.Caption.Arrow)
	assert.Equal(t, "$53K", cash.Caption.Amount)
}

func TestBuild_Revenue(t *testing.T) {
	rev := build(t, nil).Revenue

	values := make([]string, 0, len(rev.Cards))
	for _, c := range rev.Cards {
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"$6.3M", "$441K", "$620K", "33%"}, values)

	assert.True(t, rev.Chart.Options.Stacked)
	require.Len(t, rev.Chart.Datasets, 2)
	assert.Equal(t, "Distribution", rev.Chart.Datasets[0].Label)
	assert.Equal(t, "#1e3a5f", rev.Chart.Datasets[0].Color)
	assert.Equal(t, "#10b981", rev.Chart.Datasets[1].Color)
	assert.Equal(t, []float64{280093, 158400, 294372, 281942, 269217, 402466}, rev.Chart.Datasets[1].Values)
	assert.Equal(t, []LegendItem{{"Distribution", "#1e3a5f"}, {"Services", "#10b981"}}, rev.Legend)
}

func TestBuild_DebtCoverage_Healthy(t *testing.T) {
	debt := build(t, nil).Debt

	assert.Equal(t, domain.StatusGreen, debt.Gauge.Status)
	assert.Equal(t, "#10b981", debt.Gauge.Color)
	assert.Equal(t, "Debt Service Coverage: 1.93x", debt.Headline)

	tier, ok := debt.CurrentTier()
	require.True(t, ok)
	assert.Equal(t, domain.StatusGreen, tier.Status)
	assert.Equal(t, "You Are Here", tier.Name)
	assert.Equal(t, "ring-2 ring-emerald-400", tier.Ring)
	assert.Equal(t, "text-emerald-600", tier.Text)

	current := 0
	for _, tier := range debt.Tiers {
		if tier.Current {
			current++
		}
	}
	assert.Equal(t, 1, current)
	assert.Equal(t, "Danger Zone", debt.Tiers[0].Name)
	assert.Equal(t, "Caution", debt.Tiers[1].Name)
}

func TestBuild_DebtCoverage_Tiers(t *testing.T) {
	tests := []struct {
		dscr  float64
		want  domain.Status
		color string
	}{
		{dscr: 0.8, want: domain.StatusRed, color: "#ef4444"},
		{dscr: 1.0, want: domain.StatusYellow, color: "#f59e0b"},
		{dscr: 1.25, want: domain.StatusGreen, color: "#10b981"},
		{dscr: 4.5, want: domain.StatusGreen, color: "#10b981"},
	}

	for _, tt := range tests {
		debt := build(t, func(s *domain.Snapshot) { s.Consolidated.DSCR = tt.dscr }).Debt

		tier, ok := debt.CurrentTier()
		require.True(t, ok)
		assert.Equal(t, tt.want, tier.Status, "dscr %v", tt.dscr)
		assert.Equal(t, tt.color, debt.Gauge.Color, "dscr %v", tt.dscr)
	}

	over := build(t, func(s *domain.Snapshot) { s.Consolidated.DSCR = 4.5 }).Debt
	assert.Equal(t, 100.0, over.Gauge.Percent)
}

func TestBuild_RuleOf40(t *testing.T) {
	r := build(t, nil).RuleOf40

	assert.Equal(t, "40", r.Score)
	assert.Equal(t, domain.StatusGreen, r.Status)
	assert.Equal(t, "🎉 Target Achieved!", r.Verdict)
	assert.Equal(t, "+32%", r.Growth)
	assert.Equal(t, "8%", r.Margin)
	assert.InDelta(t, 66.67, r.BarWidth, 0.01)

	high := build(t, func(s *domain.Snapshot) { s.Summary.RuleOf40Score = 90 }).RuleOf40
	assert.Equal(t, 100.0, high.BarWidth)
}

func TestBuild_BigPicture(t *testing.T) {
	bp := build(t, nil).BigPicture

	assert.Equal(t, "GREEN", bp.Badge.Label)
	assert.Equal(t, "✓", bp.Badge.Glyph)
	assert.Equal(t, "50", bp.Runway.Value)
	assert.Equal(t, "days", bp.Runway.Sublabel)
	assert.InDelta(t, 55.56, bp.Runway.Percent, 0.01)
	assert.InDelta(t, 66.67, bp.RuleOf40.Percent, 0.01)
	assert.Equal(t, "What does GREEN status mean?", bp.Explainer.Title)
	assert.Contains(t, bp.Explainer.Text(), "operate for 50 days")
}

func TestBuild_BusinessUnits(t *testing.T) {
	units := build(t, nil).Units

	require.Len(t, units.Cards, 2)
	dist := units.Cards[0]
	assert.Equal(t, "Distribution", dist.Name)
	assert.Equal(t, "bg-amber-500", dist.HeaderCSS)
	assert.Equal(t, []UnitMetric{
		{Label: "Cash", Value: "$76K"},
		{Label: "Gross Margin", Value: "38%"},
		{Label: "EBITDA Margin", Value: "14%"},
		{Label: "DSCR", Value: "2.44x"},
	}, dist.Metrics)
	assert.Equal(t, "$168K → $218K", dist.Rows[0].Value)

	require.NotNil(t, units.Explainer)
	assert.Equal(t, "Distribution vs Services", units.Explainer.Title)
	require.Len(t, units.Explainer.Body, 4)
	assert.Equal(t, view.Strong("Distribution"), units.Explainer.Body[0])
	assert.Equal(t, view.Strong("Services"), units.Explainer.Body[2])
	assert.NotContains(t, units.Explainer.Text(), "**")
	assert.True(t, strings.HasPrefix(units.Explainer.Text(), "Distribution sells parts"))

	noExplainer := build(t, func(s *domain.Snapshot) { s.Config.EntityExplainer = nil }).Units
	assert.Nil(t, noExplainer.Explainer)
}

func TestBuild_ActionItems_SortedByPriority(t *testing.T) {
	page := build(t, func(s *domain.Snapshot) {
		s.ActionItems = []domain.ActionItem{
			{Priority: 3, Item: "third", Urgency: domain.UrgencyLow},
			{Priority: 1, Item: "first", Urgency: domain.UrgencyHigh},
			{Priority: 2, Item: "second-a", Urgency: domain.UrgencyMedium},
			{Priority: 2, Item: "second-b", Urgency: domain.UrgencyMedium},
		}
	})

	items := make([]string, 0, 4)
	for _, row := range page.Actions.Items {
		items = append(items, row.Item)
	}
	assert.Equal(t, []string{"first", "second-a", "second-b", "third"}, items)
	assert.Equal(t, "border-red-500", page.Actions.Items[0].Style.Border)
	assert.Equal(t, "border-stone-300", page.Actions.Items[3].Style.Border)
}

func TestBuild_Deterministic(t *testing.T) {
	assert.Equal(t, build(t, nil), build(t, nil))
}

func TestPage_Summary(t *testing.T) {
	r := build(t, nil).Summary()

	assert.Equal(t, "The Financial Times - Titan Group Edition", r.Title)
	assert.Equal(t, 77, r.Period.Progress)
	assert.Equal(t, "February 2025", r.Period.Start)
	require.Len(t, r.Sections, 7)
	assert.Equal(t, "Cash Health", r.Sections[1].Title)
	assert.Equal(t, "↑ $53K since Dec 27", r.Sections[1].Summary["change"])
	assert.Equal(t, "$193K", r.Sections[1].Details[0].Value)
	assert.Equal(t, "↑ 38%", r.Sections[1].Details[0].Unit)
	assert.Equal(t, "GREEN (> 1.25x ✓)", r.Sections[3].Summary["tier"])

	actions := r.Sections[6]
	require.Len(t, actions.Details, 3)
	assert.Equal(t, "1", actions.Details[0].Name)
	assert.Equal(t, "HIGH", actions.Details[0].Unit)
}
