package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/models/domain/domaintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	out := make([]string, 0, len(verr.Problems))
	for _, p := range verr.Problems {
		out = append(out, p.Field)
	}
	return out
}

func TestNewSnapshot_Titan(t *testing.T) {
	s, err := domain.NewSnapshot(domaintest.Titan())
	require.NoError(t, err)

	assert.Equal(t, "January", s.MonthName())
	e, ok := s.Entity("Services")
	require.True(t, ok)
	assert.Equal(t, 1.42, e.DSCR)

	_, ok = s.Entity("Holdings")
	assert.False(t, ok)
}

func TestNewSnapshot_CopiesInput(t *testing.T) {
	in := domaintest.Titan()
	s, err := domain.NewSnapshot(in)
	require.NoError(t, err)

	in.Config.Entities[0] = "Changed"
	in.Cash.Trend[0].Cash = 0
	in.RevenueTrend[0].ByEntity["Distribution"] = 0
	in.ActionItems[0].Item = "changed"
	in.Config.EntityExplainer.Title = "changed"

	assert.Equal(t, "Distribution", s.Config.Entities[0])
	assert.Equal(t, 166675.0, s.Cash.Trend[0].Cash)
	assert.Equal(t, 195767.0, s.RevenueTrend[0].ByEntity["Distribution"])
	assert.Equal(t, "Verify Services payroll spike (+181%)", s.ActionItems[0].Item)
	assert.Equal(t, "Distribution vs Services", s.Config.EntityExplainer.Title)
}

func TestNewSnapshot_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Snapshot)
		field  string
	}{
		{
			name:   "missing client name",
			mutate: func(s *domain.Snapshot) { s.Config.ClientName = " " },
			field:  "config.client_name",
		},
		{
			name:   "missing report date",
			mutate: func(s *domain.Snapshot) { s.Config.ReportDate = time.Time{} },
			field:  "config.report_date",
		},
		{
			name:   "current day past month end",
			mutate: func(s *domain.Snapshot) { s.Config.CurrentDay = 32 },
			field:  "config.current_day",
		},
		{
			name:   "zero days in month",
			mutate: func(s *domain.Snapshot) { s.Config.DaysInMonth = 0 },
			field:  "config.days_in_month",
		},
		{
			name:   "bad theme color",
			mutate: func(s *domain.Snapshot) { s.Config.Theme.PrimaryColor = "navy" },
			field:  "config.theme.primary_color",
		},
		{
			name:   "duplicate entity",
			mutate: func(s *domain.Snapshot) { s.Config.Entities = []string{"Distribution", "Distribution"} },
			field:  "config.entities[1]",
		},
		{
			name:   "unknown overall status",
			mutate: func(s *domain.Snapshot) { s.Summary.OverallStatus = "BLUE" },
			field:  "summary.overall_status",
		},
		{
			name:   "short cash trend",
			mutate: func(s *domain.Snapshot) { s.Cash.Trend = s.Cash.Trend[:4] },
			field:  "cash.trend",
		},
		{
			name:   "long revenue trend",
			mutate: func(s *domain.Snapshot) { s.RevenueTrend = append(s.RevenueTrend, s.RevenueTrend[0]) },
			field:  "revenue_trend",
		},
		{
			name:   "negative entity dscr",
			mutate: func(s *domain.Snapshot) { s.Entities[1].DSCR = -0.1 },
			field:  "entities[1].dscr",
		},
		{
			name:   "negative consolidated dscr",
			mutate: func(s *domain.Snapshot) { s.Consolidated.DSCR = -1 },
			field:  "consolidated.dscr",
		},
		{
			name:   "unknown entity in revenue trend",
			mutate: func(s *domain.Snapshot) { s.RevenueTrend[2].ByEntity["Holdings"] = 1 },
			field:  "revenue_trend[2].by_entity",
		},
		{
			name:   "missing entity in revenue trend",
			mutate: func(s *domain.Snapshot) { delete(s.RevenueTrend[3].ByEntity, "Services") },
			field:  "revenue_trend[3].by_entity",
		},
		{
			name:   "entity metrics missing",
			mutate: func(s *domain.Snapshot) { s.Entities = s.Entities[:1] },
			field:  "entities",
		},
		{
			name:   "unknown urgency",
			mutate: func(s *domain.Snapshot) { s.ActionItems[2].Urgency = "SOON" },
			field:  "action_items[2].urgency",
		},
		{
			name:   "zero priority",
			mutate: func(s *domain.Snapshot) { s.ActionItems[0].Priority = 0 },
			field:  "action_items[0].priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domaintest.Titan()
			tt.mutate(&in)

			s, err := domain.NewSnapshot(in)
			assert.Nil(t, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidSnapshot))
			assert.Contains(t, fields(t, err), tt.field)
		})
	}
}

func TestNewSnapshot_ReportsEveryProblem(t *testing.T) {
	_, err := domain.NewSnapshot(domain.Snapshot{})
	require.Error(t, err)

	got := fields(t, err)
	for _, want := range []string{
		"config.client_name",
		"config.client_slug",
		"config.data_source",
		"config.publisher.masthead",
		"config.report_date",
		"config.last_sync",
		"config.days_in_month",
		"config.entities",
		"summary.overall_status",
		"summary.status_reason",
		"cash.trend",
		"revenue_trend",
	} {
		assert.Contains(t, got, want)
	}
}

func TestRevenueTrendPoint_Values(t *testing.T) {
	p := domaintest.Titan().RevenueTrend[5]
	assert.Equal(t, []float64{402466, 217510}, p.Values([]string{"Services", "Distribution"}))
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, domain.StatusGreen.Valid())
	assert.True(t, domain.StatusRed.Valid())
	assert.False(t, domain.Status("").Valid())
	assert.False(t, domain.Status("green").Valid())
	assert.True(t, domain.UrgencyLow.Valid())
	assert.False(t, domain.Urgency("URGENT").Valid())
}
