package report

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/benefique/cfo-times/pkg/format"
	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/view"
)

var ErrNilSnapshot = errors.New("report: nil snapshot")

const (
	runwayRingMax   = 90
	ruleOf40RingMax = 60
	bigPictureRing  = 90
	dscrGaugeMax    = 3
	dscrGaugeSize   = 160
	cashChartHeight = 200
	revChartHeight  = 220
	cashLineColor   = "#10b981"
)

// seriesColors follow the theme primary color for the first entity.
var seriesColors = []string{"#10b981", "#f59e0b", "#6366f1", "#ec4899", "#0ea5e9"}

// Build derives the page for a snapshot. It is a pure function of its input:
// the same snapshot always yields an identical page.
func Build(s *domain.Snapshot) (*Page, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	cfg := s.Config

	return &Page{
		Title:      fmt.Sprintf("%s - %s Edition", cfg.Publisher.Masthead, cfg.ClientName),
		Theme:      cfg.Theme,
		Header:     buildHeader(s),
		BigPicture: buildBigPicture(s),
		Cash:       buildCashHealth(s),
		Revenue:    buildRevenue(s),
		Debt:       buildDebtCoverage(s),
		RuleOf40:   buildRuleOf40(s),
		Units:      buildBusinessUnits(s),
		Actions:    buildActionItems(s),
		Footer:     buildFooter(s),
	}, nil
}

func buildHeader(s *domain.Snapshot) Header {
	cfg := s.Config
	progress := format.MonthProgressPercent(cfg.CurrentDay, cfg.DaysInMonth)

	edition := cfg.ClientName + " Edition"
	if cfg.EditionNumber > 0 {
		edition = fmt.Sprintf("%s Edition · No. %d", cfg.ClientName, cfg.EditionNumber)
	}

	return Header{
		Firm:         cfg.Publisher.Firm,
		Masthead:     cfg.Publisher.Masthead,
		Edition:      edition,
		ReportDate:   cfg.ReportDate.Format(domain.ReportDateLayout),
		Location:     cfg.Location,
		MonthLabel:   s.MonthName() + " Progress",
		Progress:     progress,
		ProgressText: fmt.Sprintf("%d%% complete", progress),
		DayText:      fmt.Sprintf("Day %d of %d • Numbers are projected to end of month", cfg.CurrentDay, cfg.DaysInMonth),
		PeriodStart:  cfg.PeriodStart,
		PeriodEnd:    cfg.PeriodEnd,
		CurrentDay:   cfg.CurrentDay,
		DaysInMonth:  cfg.DaysInMonth,
	}
}

func buildBigPicture(s *domain.Snapshot) BigPicture {
	sum := s.Summary

	return BigPicture{
		Section: view.Section{Key: KeyBigPicture, Icon: "🎯", Title: "The Big Picture", Subtitle: "Your business health at a glance"},
		Badge:   view.NewStatusBadge(sum.OverallStatus, view.BadgeLarge),
		Reason:  sum.StatusReason,
		Runway: view.NewRing(view.RingProps{
			Value: float64(sum.CashRunway), Max: runwayRingMax, Size: bigPictureRing,
			Label: "Cash Runway", Sublabel: "days",
		}),
		RuleOf40: view.NewRing(view.RingProps{
			Value: sum.RuleOf40Score, Max: ruleOf40RingMax, Size: bigPictureRing,
			Label: "Rule of 40", Sublabel: "score",
		}),
		Explainer: statusExplainer(sum),
	}
}

func statusExplainer(sum domain.SummaryMetrics) view.Explainer {
	title := fmt.Sprintf("What does %s status mean?", sum.OverallStatus)
	runway := strconv.Itoa(sum.CashRunway)

	switch sum.OverallStatus {
	case domain.StatusGreen:
		return view.NewExplainer(title, "✅",
			view.Plain("Your business is healthy! You have enough cash to operate for "+runway+
				" days without new revenue, you're profitable, and you can comfortably pay all your debts. "+
				"Keep doing what you're doing."))
	case domain.StatusYellow:
		return view.NewExplainer(title, "⚠️",
			view.Plain("Your business is stable but a few numbers need watching. You can operate for "+runway+
				" days without new revenue. "),
			view.Strong("Review the focus items below"),
			view.Plain(" before they turn into problems."))
	default:
		return view.NewExplainer(title, "🚨",
			view.Plain("One or more key measures is outside a safe range. With "+runway+
				" days of cash on hand, "),
			view.Strong("act on the focus items this week"),
			view.Plain(" and talk to your CFO team about a cash plan."))
	}
}

func buildCashHealth(s *domain.Snapshot) CashHealth {
	cash := s.Cash
	monthlyProfit := s.Summary.TTMNetIncome / 12

	cards := []view.MetricCard{
		view.NewMetricCard(view.MetricCardProps{
			Title:   "Cash on Hand",
			Value:   format.CurrencyValue(cash.Current),
			Subtext: combinedLabel(s.Config.Entities),
			Status:  format.TrendStatus(cash.Change),
			Trend:   view.Trend(cash.ChangePct),
		}),
		view.NewMetricCard(view.MetricCardProps{
			Title:   "Cash Runway",
			Value:   fmt.Sprintf("%d days", cash.DaysOnHand),
			Subtext: "How long you can operate",
			Status:  format.CashRunwayStatus(cash.DaysOnHand),
		}),
		view.NewMetricCard(view.MetricCardProps{
			Title:   "Monthly Profit",
			Value:   format.CurrencyValue(monthlyProfit),
			Subtext: "Average per month (TTM)",
			Status:  format.SignStatus(monthlyProfit),
		}),
	}

	labels := make([]string, 0, len(cash.Trend))
	values := make([]float64, 0, len(cash.Trend))
	for _, p := range cash.Trend {
		labels = append(labels, p.Week)
		values = append(values, p.Cash)
	}

	caption := ChangeCaption{Arrow: "↑", CSS: "text-emerald-600"}
	if cash.Change < 0 {
		caption = ChangeCaption{Arrow: "↓", CSS: "text-red-600"}
	}
	caption.Amount = format.CurrencyValue(math.Abs(cash.Change))
	if len(labels) > 0 {
		caption.Since = "since " + labels[0]
	}

	return CashHealth{
		Section: view.Section{Key: KeyCashHealth, Icon: "💰", Title: "Cash Health", Subtitle: "The lifeblood of your business"},
		Cards:   cards,
		Chart: view.ChartSpec{
			ID:     "cash-trend",
			Title:  fmt.Sprintf("%d-Week Cash Trend", len(labels)),
			Type:   view.ChartArea,
			Labels: labels,
			Datasets: []view.Dataset{
				{Label: "Cash", Values: values, Color: cashLineColor, Fill: true},
			},
			Options: view.ChartOptions{CurrencyAxis: true, Height: cashChartHeight},
		},
		Caption: caption,
		Explainer: view.NewExplainer("Why Cash Runway Matters", "⏱️",
			view.Plain("Cash runway tells you how many days you could keep operating if all revenue stopped today. "),
			view.Strong(runwayVerdict(cash.DaysOnHand)),
			view.Plain(fmt.Sprintf(" We recommend keeping at least %d days on hand. Below 14 days is a red alert.",
				format.RunwayCautionDays)),
		),
	}
}

func combinedLabel(entities []string) string {
	switch len(entities) {
	case 1:
		return entities[0]
	case 2:
		return "Combined both entities"
	default:
		return fmt.Sprintf("Combined %d entities", len(entities))
	}
}

func runwayVerdict(days int) string {
	switch format.CashRunwayStatus(days) {
	case domain.StatusGreen:
		return fmt.Sprintf("%d days is healthy: it gives you time to react to surprises.", days)
	case domain.StatusYellow:
		return fmt.Sprintf("%d days is workable, but leaves little room for surprises.", days)
	default:
		return fmt.Sprintf("%d days is too thin to absorb a slow month.", days)
	}
}

func buildRevenue(s *domain.Snapshot) Revenue {
	con := s.Consolidated
	entities := s.Config.Entities

	cards := []view.MetricCard{
		view.NewMetricCard(view.MetricCardProps{
			Title: "TTM Revenue", Value: format.CurrencyValue(con.TTMRevenue),
			Subtext: "Last 12 months", Status: domain.StatusGreen,
		}),
		view.NewMetricCard(view.MetricCardProps{
			Title: "TTM Profit", Value: format.CurrencyValue(con.TTMNetIncome),
			Subtext: "Net income", Status: format.SignStatus(con.TTMNetIncome),
		}),
		view.NewMetricCard(view.MetricCardProps{
			Title: "This Month", Value: format.CurrencyValue(con.RevenueProjected),
			Subtext: "Projected revenue", Status: domain.StatusGreen,
		}),
		view.NewMetricCard(view.MetricCardProps{
			Title: "EBITDA Margin", Value: format.Percent(con.EBITDAPct),
			Subtext: "This month", Status: format.SignStatus(con.EBITDAPct),
		}),
	}

	labels := make([]string, 0, len(s.RevenueTrend))
	for _, p := range s.RevenueTrend {
		labels = append(labels, p.Month)
	}

	// one series per entity, in config order
	series := make([][]float64, len(entities))
	for _, p := range s.RevenueTrend {
		for i, v := range p.Values(entities) {
			series[i] = append(series[i], v)
		}
	}

	datasets := make([]view.Dataset, 0, len(entities))
	legend := make([]LegendItem, 0, len(entities))
	for i, name := range entities {
		color := entityColor(s.Config.Theme, i)
		datasets = append(datasets, view.Dataset{Label: name, Values: series[i], Color: color, Stack: "revenue"})
		legend = append(legend, LegendItem{Label: name, Color: color})
	}

	margin := format.Percent(con.EBITDAPct)
	return Revenue{
		Section: view.Section{Key: KeyRevenue, Icon: "📈", Title: "Revenue & Profitability", Subtitle: "Are you making money?"},
		Cards:   cards,
		Chart: view.ChartSpec{
			ID:       "revenue-trend",
			Title:    fmt.Sprintf("%d-Month Revenue by Business Unit", len(labels)),
			Type:     view.ChartBar,
			Labels:   labels,
			Datasets: datasets,
			Options:  view.ChartOptions{Stacked: true, CurrencyAxis: true, Height: revChartHeight},
		},
		Legend: legend,
		Explainer: view.NewExplainer("Understanding Your Profit Margins", "📊",
			view.Strong("EBITDA Margin of "+margin),
			view.Plain(fmt.Sprintf(" means that for every $100 in revenue, you keep $%s after paying for goods and "+
				"operating expenses (before interest, taxes, and depreciation). Your trailing 12-month average is %s.",
				format.Number(con.EBITDAPct), format.Percent(con.TTMEBITDAPct))),
		),
	}
}

func entityColor(theme domain.Theme, i int) string {
	if i == 0 {
		return theme.PrimaryColor
	}
	return seriesColors[(i-1)%len(seriesColors)]
}

func buildDebtCoverage(s *domain.Snapshot) DebtCoverage {
	dscr := s.Consolidated.DSCR
	status := format.DSCRStatus(dscr)

	tiers := []DSCRTier{
		{Status: domain.StatusRed, Name: "Danger Zone", Range: "< 1.0x"},
		{Status: domain.StatusYellow, Name: "Caution", Range: "1.0 - 1.25x"},
		{Status: domain.StatusGreen, Name: "Healthy", Range: "> 1.25x"},
	}
	for i := range tiers {
		t := &tiers[i]
		palette := format.StatusPalette(t.Status)
		t.Text = palette.Text
		t.Background = palette.Background
		if t.Status == status {
			t.Current = true
			t.Name = "You Are Here"
			t.Range += " ✓"
			t.Ring = "ring-2 " + ringColor(t.Status)
		}
	}

	return DebtCoverage{
		Section: view.Section{Key: KeyDebtCoverage, Icon: "🏦", Title: "Debt Coverage", Subtitle: "Can you pay your obligations?"},
		Gauge: view.NewGauge(view.GaugeProps{
			Value: dscr, Max: dscrGaugeMax, Label: "DSCR", Status: status, Size: dscrGaugeSize,
		}),
		Headline: "Debt Service Coverage: " + format.Ratio(dscr),
		Narrative: []view.Fragment{
			view.Plain("Your business generates "),
			view.Strong(strconv.FormatFloat(dscr, 'f', 1, 64) + " times"),
			view.Plain(" the cash needed to pay all debt obligations. " + coverageVerdict(status)),
		},
		Tiers: tiers,
		Explainer: view.NewExplainer("What is DSCR?", "🎓",
			view.Strong("Debt Service Coverage Ratio (DSCR)"),
			view.Plain(fmt.Sprintf(` answers a simple question: "Can I pay my loans?" It compares your operating income `+
				`to your debt payments. A DSCR of %s means you make $%s for every $100 of debt payments owed. `+
				`Banks typically want to see at least 1.25x before lending.`,
				format.Ratio(dscr), strconv.FormatFloat(dscr*100, 'f', 0, 64))),
		),
	}
}

func ringColor(status domain.Status) string {
	switch status {
	case domain.StatusGreen:
		return "ring-emerald-400"
	case domain.StatusYellow:
		return "ring-amber-400"
	default:
		return "ring-red-400"
	}
}

func coverageVerdict(status domain.Status) string {
	switch status {
	case domain.StatusGreen:
		return "This is a comfortable margin."
	case domain.StatusYellow:
		return "This covers your payments, but with little to spare."
	default:
		return "Operating cash does not fully cover debt payments."
	}
}

func buildRuleOf40(s *domain.Snapshot) RuleOf40 {
	score := s.Summary.RuleOf40Score
	status := format.RuleOf40Status(score)
	palette := format.StatusPalette(status)

	closing := " keep pushing toward 40."
	if status == domain.StatusGreen {
		closing = " you've hit the target!"
	}

	return RuleOf40{
		Section:  view.Section{Key: KeyRuleOf40, Icon: "⚖️", Title: "Growth vs. Profit Balance", Subtitle: "The Rule of 40"},
		Score:    format.Number(score),
		Status:   status,
		ScoreCSS: palette.Text,
		Verdict:  format.RuleOf40Verdict(score),
		Growth:   format.SignedPercent(s.Consolidated.AnnualizedGrowth),
		Margin:   format.Percent(s.Consolidated.TTMEBITDAPct),
		BarWidth: format.ClampedPercent(score, format.RuleOf40Scale),
		BarCSS:   palette.Fill,
		Target:   format.RuleOf40Target,
		Scale:    format.RuleOf40Scale,
		Explainer: view.NewExplainer("What is the Rule of 40?", "🧮",
			view.Plain("The Rule of 40 is a simple test used by investors: "),
			view.Strong("Growth Rate + Profit Margin should equal at least 40"),
			view.Plain(". It shows if you're balancing growth and profitability well. A fast-growing company can have "+
				"lower margins, while a slow-growing company needs higher margins. You're at "+format.Number(score)+":"+closing),
		),
	}
}

func buildBusinessUnits(s *domain.Snapshot) BusinessUnits {
	cards := make([]UnitCard, 0, len(s.Config.Entities))
	for _, name := range s.Config.Entities {
		e, ok := s.Entity(name)
		if !ok {
			continue
		}
		cards = append(cards, UnitCard{
			Name:      e.Name,
			Note:      e.StatusNote,
			Status:    e.Status,
			HeaderCSS: format.StatusPalette(e.Status).Header,
			Metrics: []UnitMetric{
				{Label: "Cash", Value: format.CurrencyValue(e.Cash)},
				{Label: "Gross Margin", Value: format.Percent(e.GrossMarginPct)},
				{Label: "EBITDA Margin", Value: format.Percent(e.EBITDAPct)},
				{Label: "DSCR", Value: format.Ratio(e.DSCR)},
			},
			Rows: []UnitRow{
				{Label: "MTD Revenue", Value: format.CurrencyValue(e.Revenue) + " → " + format.CurrencyValue(e.RevenueProjected)},
				{Label: "TTM Revenue", Value: format.CurrencyValue(e.TTMRevenue)},
				{Label: "TTM Net Income", Value: format.CurrencyValue(e.TTMNetIncome), CSS: format.StatusTextColor(format.SignStatus(e.TTMNetIncome))},
			},
		})
	}

	units := BusinessUnits{
		Section: view.Section{Key: KeyBusinessUnits, Icon: "🏢", Title: "Business Unit Performance", Subtitle: "How each part of the business is doing"},
		Cards:   cards,
	}
	if ex := s.Config.EntityExplainer; ex != nil {
		explainer := view.NewExplainer(ex.Title, "🔍", view.ParseEmphasis(ex.Body)...)
		units.Explainer = &explainer
	}
	return units
}

func buildActionItems(s *domain.Snapshot) ActionItems {
	items := slices.Clone(s.ActionItems)
	slices.SortStableFunc(items, func(a, b domain.ActionItem) int {
		return a.Priority - b.Priority
	})

	rows := make([]ActionRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ActionRow{
			Priority: item.Priority,
			Item:     item.Item,
			Context:  item.Context,
			Urgency:  item.Urgency,
			Style:    format.UrgencyPalette(item.Urgency),
		})
	}

	return ActionItems{
		Section: view.Section{Key: KeyActionItems, Icon: "✅", Title: "This Week's Focus", Subtitle: "Key items that need your attention"},
		Items:   rows,
	}
}

func buildFooter(s *domain.Snapshot) Footer {
	cfg := s.Config
	return Footer{
		Title:       cfg.Publisher.Title,
		Byline:      cfg.Publisher.Byline,
		Copyright:   cfg.Publisher.Copyright,
		Synced:      "Data synced: " + cfg.LastSync.Format(domain.LastSyncLayout),
		DataSource:  "Source: " + cfg.DataSource,
		NextEdition: cfg.NextEdition,
		Contact:     cfg.ContactEmail,
	}
}
