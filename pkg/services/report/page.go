package report

import (
	"github.com/benefique/cfo-times/pkg/format"
	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/view"
)

// Section keys in display order.
const (
	KeyBigPicture    = "big-picture"
	KeyCashHealth    = "cash-health"
	KeyRevenue       = "revenue"
	KeyDebtCoverage  = "debt-coverage"
	KeyRuleOf40      = "rule-of-40"
	KeyBusinessUnits = "business-units"
	KeyActionItems   = "action-items"
)

// Page is the fully derived view of one report edition. It holds only display
// values; renderers never reach back into the snapshot.
type Page struct {
	Title      string
	Theme      domain.Theme
	Header     Header
	BigPicture BigPicture
	Cash       CashHealth
	Revenue    Revenue
	Debt       DebtCoverage
	RuleOf40   RuleOf40
	Units      BusinessUnits
	Actions    ActionItems
	Footer     Footer
}

// Sections lists the section headings in display order.
func (p *Page) Sections() []view.Section {
	return []view.Section{
		p.BigPicture.Section,
		p.Cash.Section,
		p.Revenue.Section,
		p.Debt.Section,
		p.RuleOf40.Section,
		p.Units.Section,
		p.Actions.Section,
	}
}

type Header struct {
	Firm         string
	Masthead     string
	Edition      string
	ReportDate   string
	Location     string
	MonthLabel   string
	Progress     int
	ProgressText string
	DayText      string
	PeriodStart  string
	PeriodEnd    string
	CurrentDay   int
	DaysInMonth  int
}

type BigPicture struct {
	Section   view.Section
	Badge     view.StatusBadge
	Reason    string
	Runway    view.Ring
	RuleOf40  view.Ring
	Explainer view.Explainer
}

type ChangeCaption struct {
	Arrow  string
	Amount string
	Since  string
	CSS    string
}

type CashHealth struct {
	Section   view.Section
	Cards     []view.MetricCard
	Chart     view.ChartSpec
	Caption   ChangeCaption
	Explainer view.Explainer
}

type LegendItem struct {
	Label string
	Color string
}

type Revenue struct {
	Section   view.Section
	Cards     []view.MetricCard
	Chart     view.ChartSpec
	Legend    []LegendItem
	Explainer view.Explainer
}

// DSCRTier is one band of the debt coverage scale. Exactly one tier is
// Current: the one matching the consolidated DSCR status.
type DSCRTier struct {
	Status     domain.Status
	Name       string
	Range      string
	Text       string
	Background string
	Ring       string
	Current    bool
}

type DebtCoverage struct {
	Section   view.Section
	Gauge     view.Gauge
	Headline  string
	Narrative []view.Fragment
	Tiers     []DSCRTier
	Explainer view.Explainer
}

// CurrentTier returns the highlighted tier.
func (d DebtCoverage) CurrentTier() (DSCRTier, bool) {
	for _, t := range d.Tiers {
		if t.Current {
			return t, true
		}
	}
	return DSCRTier{}, false
}

type RuleOf40 struct {
	Section   view.Section
	Score     string
	Status    domain.Status
	ScoreCSS  string
	Verdict   string
	Growth    string
	Margin    string
	BarWidth  float64
	BarCSS    string
	Target    int
	Scale     int
	Explainer view.Explainer
}

type UnitMetric struct {
	Label string
	Value string
}

type UnitRow struct {
	Label string
	Value string
	CSS   string
}

type UnitCard struct {
	Name      string
	Note      string
	Status    domain.Status
	HeaderCSS string
	Metrics   []UnitMetric
	Rows      []UnitRow
}

type BusinessUnits struct {
	Section   view.Section
	Cards     []UnitCard
	Explainer *view.Explainer
}

type ActionRow struct {
	Priority int
	Item     string
	Context  string
	Urgency  domain.Urgency
	Style    format.UrgencyStyle
}

type ActionItems struct {
	Section view.Section
	Items   []ActionRow
}

type Footer struct {
	Title       string
	Byline      string
	Copyright   string
	Synced      string
	DataSource  string
	NextEdition string
	Contact     string
}
