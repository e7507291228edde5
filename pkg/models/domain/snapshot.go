package domain

import (
	"maps"
	"slices"
	"time"
)

const (
	// CashTrendWeeks is the number of weekly points in a cash trend.
	CashTrendWeeks = 5
	// RevenueTrendMonths is the number of monthly points in a revenue trend.
	RevenueTrendMonths = 6

	ReportDateLayout = "January 2, 2006"
	LastSyncLayout   = "2006-01-02 15:04:05"
)

type Theme struct {
	PrimaryColor   string
	SecondaryColor string
}

// Publisher identifies the CFO practice that issues the report.
type Publisher struct {
	Firm      string // "Benefique Fractional CFO"
	Masthead  string // "The Financial Times"
	Title     string // "The Benefique Financial Times"
	Byline    string
	Copyright string
}

type Explainer struct {
	Title string
	Body  string
}

type ReportConfig struct {
	ClientName      string
	ClientSlug      string
	Industry        string
	Location        string
	ReportDate      time.Time
	EditionNumber   int
	PeriodStart     string
	PeriodEnd       string
	CurrentDay      int
	DaysInMonth     int
	IsMultiEntity   bool
	Entities        []string
	HasConsolidated bool
	Theme           Theme
	DataSource      string
	LastSync        time.Time
	Publisher       Publisher
	ContactEmail    string
	NextEdition     string
	EntityExplainer *Explainer
}

type SummaryMetrics struct {
	OverallStatus Status
	StatusReason  string
	CashRunway    int // days
	TTMNetIncome  float64
	RuleOf40Score float64
}

type CashPoint struct {
	Week string
	Cash float64
}

type CashSnapshot struct {
	Current    float64
	Prior      float64
	Change     float64
	ChangePct  float64
	DaysOnHand int
	Trend      []CashPoint
}

type EntityMetrics struct {
	Name             string
	Status           Status
	StatusNote       string
	Cash             float64
	Revenue          float64
	RevenueProjected float64
	RevenuePrior     float64
	EBITDA           float64
	EBITDAPct        float64
	GrossMarginPct   float64
	DSCR             float64
	TTMRevenue       float64
	TTMNetIncome     float64
}

type ConsolidatedMetrics struct {
	Cash             float64
	Revenue          float64
	RevenueProjected float64
	EBITDA           float64
	EBITDAPct        float64
	TTMRevenue       float64
	TTMEBITDA        float64
	TTMEBITDAPct     float64
	TTMNetIncome     float64
	DSCR             float64
	AnnualizedGrowth float64
}

type RevenueTrendPoint struct {
	Month    string
	ByEntity map[string]float64
	Total    float64
}

// Values returns the per-entity revenue in the given entity order.
func (p RevenueTrendPoint) Values(entities []string) []float64 {
	values := make([]float64, 0, len(entities))
	for _, name := range entities {
		values = append(values, p.ByEntity[name])
	}
	return values
}

type ActionItem struct {
	Priority int
	Item     string
	Context  string
	Urgency  Urgency
}

// Snapshot is the complete, validated input of one report edition.
// Values are never mutated after NewSnapshot returns.
type Snapshot struct {
	Config       ReportConfig
	Summary      SummaryMetrics
	Cash         CashSnapshot
	Entities     []EntityMetrics
	Consolidated ConsolidatedMetrics
	RevenueTrend []RevenueTrendPoint
	ActionItems  []ActionItem
}

// NewSnapshot validates s and returns a private copy of it.
func NewSnapshot(s Snapshot) (*Snapshot, error) {
	verr := &ValidationError{}
	s.validate(verr)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	out := s.clone()
	return &out, nil
}

// Entity looks up the metrics of a business unit by name.
func (s *Snapshot) Entity(name string) (EntityMetrics, bool) {
	for _, e := range s.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return EntityMetrics{}, false
}

// MonthName is the calendar month the report covers.
func (s *Snapshot) MonthName() string {
	return s.Config.ReportDate.Month().String()
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Config.Entities = slices.Clone(s.Config.Entities)
	if s.Config.EntityExplainer != nil {
		explainer := *s.Config.EntityExplainer
		out.Config.EntityExplainer = &explainer
	}
	out.Cash.Trend = slices.Clone(s.Cash.Trend)
	out.Entities = slices.Clone(s.Entities)
	out.RevenueTrend = make([]RevenueTrendPoint, len(s.RevenueTrend))
	for i, p := range s.RevenueTrend {
		p.ByEntity = maps.Clone(p.ByEntity)
		out.RevenueTrend[i] = p
	}
	out.ActionItems = slices.Clone(s.ActionItems)
	return out
}
