package adapters

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/benefique/cfo-times/pkg/models/api"
	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/models/store"
)

// DefaultTheme applies when a document carries no theme block.
var DefaultTheme = domain.Theme{PrimaryColor: "#1e3a5f", SecondaryColor: "#166534"}

// DefaultPublisher applies when a document carries no publisher block.
var DefaultPublisher = domain.Publisher{
	Firm:      "Benefique Fractional CFO",
	Masthead:  "The Financial Times",
	Title:     "The Benefique Financial Times",
	Byline:    "Published by Benefique Fractional CFO Services",
	Copyright: "© 2026 Benefique Capital LLC",
}

// MapStoreSnapshotToDomain converts a decoded document into a validated
// snapshot. Absent values and domain rule violations are reported together in
// one *domain.ValidationError.
func MapStoreSnapshotToDomain(doc store.SnapshotDocument) (*domain.Snapshot, error) {
	m := &mapper{verr: &domain.ValidationError{}}

	s := domain.Snapshot{
		Config:       m.config(doc.Config),
		Summary:      m.summary(doc.Summary),
		Cash:         m.cash(doc.Cash),
		Consolidated: m.consolidated(doc.Consolidated),
	}
	for i, e := range doc.Entities {
		s.Entities = append(s.Entities, m.entity(fmt.Sprintf("entities[%d]", i), e))
	}
	for i, p := range doc.RevenueTrend {
		field := fmt.Sprintf("revenue_trend[%d]", i)
		s.RevenueTrend = append(s.RevenueTrend, domain.RevenueTrendPoint{
			Month:    p.Month,
			ByEntity: maps.Clone(p.ByEntity),
			Total:    m.number(field+".total", p.Total),
		})
	}
	for i, a := range doc.ActionItems {
		field := fmt.Sprintf("action_items[%d]", i)
		s.ActionItems = append(s.ActionItems, domain.ActionItem{
			Priority: m.count(field+".priority", a.Priority),
			Item:     a.Item,
			Context:  a.Context,
			Urgency:  domain.Urgency(strings.ToUpper(a.Urgency)),
		})
	}

	snapshot, err := domain.NewSnapshot(s)
	if err != nil {
		m.verr.Merge(err)
	}
	if err := m.verr.Err(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

type mapper struct {
	verr *domain.ValidationError
}

func (m *mapper) number(field string, v *float64) float64 {
	if v == nil {
		m.verr.Missing(field)
		return 0
	}
	return *v
}

func (m *mapper) count(field string, v *int) int {
	if v == nil {
		m.verr.Missing(field)
		return 0
	}
	return *v
}

func (m *mapper) timestamp(field, layout, value string) time.Time {
	if strings.TrimSpace(value) == "" {
		// reported by snapshot validation
		return time.Time{}
	}
	for _, l := range []string{layout, time.RFC3339} {
		if t, err := time.ParseInLocation(l, value, time.UTC); err == nil {
			return t
		}
	}
	m.verr.Add(field, "cannot parse %q, expected layout %q", value, layout)
	return time.Time{}
}

func (m *mapper) config(doc *store.ConfigDocument) domain.ReportConfig {
	if doc == nil {
		m.verr.Missing("config")
		return domain.ReportConfig{}
	}

	cfg := domain.ReportConfig{
		ClientName:      doc.ClientName,
		ClientSlug:      doc.ClientSlug,
		Industry:        doc.Industry,
		Location:        doc.Location,
		ReportDate:      m.timestamp("config.report_date", domain.ReportDateLayout, doc.ReportDate),
		EditionNumber:   doc.EditionNumber,
		PeriodStart:     doc.PeriodStart,
		PeriodEnd:       doc.PeriodEnd,
		CurrentDay:      m.count("config.current_day", doc.CurrentDay),
		DaysInMonth:     m.count("config.days_in_month", doc.DaysInMonth),
		IsMultiEntity:   doc.IsMultiEntity,
		Entities:        doc.Entities,
		HasConsolidated: doc.HasConsolidated,
		Theme:           DefaultTheme,
		DataSource:      doc.DataSource,
		LastSync:        m.timestamp("config.last_sync", domain.LastSyncLayout, doc.LastSync),
		Publisher:       DefaultPublisher,
		ContactEmail:    doc.ContactEmail,
		NextEdition:     doc.NextEdition,
	}
	if doc.Theme != nil {
		cfg.Theme = domain.Theme{PrimaryColor: doc.Theme.PrimaryColor, SecondaryColor: doc.Theme.SecondaryColor}
	}
	if doc.Publisher != nil {
		cfg.Publisher = domain.Publisher(*doc.Publisher)
	}
	if doc.EntityExplainer != nil {
		cfg.EntityExplainer = &domain.Explainer{Title: doc.EntityExplainer.Title, Body: doc.EntityExplainer.Body}
	}
	return cfg
}

func (m *mapper) summary(doc *store.SummaryDocument) domain.SummaryMetrics {
	if doc == nil {
		m.verr.Missing("summary")
		return domain.SummaryMetrics{}
	}
	return domain.SummaryMetrics{
		OverallStatus: domain.Status(strings.ToUpper(doc.OverallStatus)),
		StatusReason:  doc.StatusReason,
		CashRunway:    m.count("summary.cash_runway", doc.CashRunway),
		TTMNetIncome:  m.number("summary.ttm_net_income", doc.TTMNetIncome),
		RuleOf40Score: m.number("summary.rule_of_40_score", doc.RuleOf40Score),
	}
}

func (m *mapper) cash(doc *store.CashDocument) domain.CashSnapshot {
	if doc == nil {
		m.verr.Missing("cash")
		return domain.CashSnapshot{}
	}
	cash := domain.CashSnapshot{
		Current:    m.number("cash.current", doc.Current),
		Prior:      m.number("cash.prior", doc.Prior),
		Change:     m.number("cash.change", doc.Change),
		ChangePct:  m.number("cash.change_pct", doc.ChangePct),
		DaysOnHand: m.count("cash.days_on_hand", doc.DaysOnHand),
	}
	for i, p := range doc.Trend {
		cash.Trend = append(cash.Trend, domain.CashPoint{
			Week: p.Week,
			Cash: m.number(fmt.Sprintf("cash.trend[%d].cash", i), p.Cash),
		})
	}
	return cash
}

func (m *mapper) entity(field string, doc store.EntityDocument) domain.EntityMetrics {
	return domain.EntityMetrics{
		Name:             doc.Name,
		Status:           domain.Status(strings.ToUpper(doc.Status)),
		StatusNote:       doc.StatusNote,
		Cash:             m.number(field+".cash", doc.Cash),
		Revenue:          m.number(field+".revenue", doc.Revenue),
		RevenueProjected: m.number(field+".revenue_projected", doc.RevenueProjected),
		RevenuePrior:     m.number(field+".revenue_prior", doc.RevenuePrior),
		EBITDA:           m.number(field+".ebitda", doc.EBITDA),
		EBITDAPct:        m.number(field+".ebitda_pct", doc.EBITDAPct),
		GrossMarginPct:   m.number(field+".gross_margin_pct", doc.GrossMarginPct),
		DSCR:             m.number(field+".dscr", doc.DSCR),
		TTMRevenue:       m.number(field+".ttm_revenue", doc.TTMRevenue),
		TTMNetIncome:     m.number(field+".ttm_net_income", doc.TTMNetIncome),
	}
}

func (m *mapper) consolidated(doc *store.ConsolidatedDocument) domain.ConsolidatedMetrics {
	if doc == nil {
		m.verr.Missing("consolidated")
		return domain.ConsolidatedMetrics{}
	}
	return domain.ConsolidatedMetrics{
		Cash:             m.number("consolidated.cash", doc.Cash),
		Revenue:          m.number("consolidated.revenue", doc.Revenue),
		RevenueProjected: m.number("consolidated.revenue_projected", doc.RevenueProjected),
		EBITDA:           m.number("consolidated.ebitda", doc.EBITDA),
		EBITDAPct:        m.number("consolidated.ebitda_pct", doc.EBITDAPct),
		TTMRevenue:       m.number("consolidated.ttm_revenue", doc.TTMRevenue),
		TTMEBITDA:        m.number("consolidated.ttm_ebitda", doc.TTMEBITDA),
		TTMEBITDAPct:     m.number("consolidated.ttm_ebitda_pct", doc.TTMEBITDAPct),
		TTMNetIncome:     m.number("consolidated.ttm_net_income", doc.TTMNetIncome),
		DSCR:             m.number("consolidated.dscr", doc.DSCR),
		AnnualizedGrowth: m.number("consolidated.annualized_growth", doc.AnnualizedGrowth),
	}
}

func MapSnapshotDomainToApi(s *domain.Snapshot) api.Snapshot {
	cfg := s.Config
	out := api.Snapshot{
		Client: api.Client{
			Name:     cfg.ClientName,
			Slug:     cfg.ClientSlug,
			Industry: cfg.Industry,
			Location: cfg.Location,
			Entities: append([]string{}, cfg.Entities...),
		},
		Period: api.Period{
			ReportDate:  cfg.ReportDate,
			Edition:     cfg.EditionNumber,
			Start:       cfg.PeriodStart,
			End:         cfg.PeriodEnd,
			CurrentDay:  cfg.CurrentDay,
			DaysInMonth: cfg.DaysInMonth,
		},
		Summary: api.Summary{
			OverallStatus: s.Summary.OverallStatus.String(),
			StatusReason:  s.Summary.StatusReason,
			CashRunway:    s.Summary.CashRunway,
			TTMNetIncome:  s.Summary.TTMNetIncome,
			RuleOf40Score: s.Summary.RuleOf40Score,
		},
		Cash: api.Cash{
			Current:    s.Cash.Current,
			Prior:      s.Cash.Prior,
			Change:     s.Cash.Change,
			ChangePct:  s.Cash.ChangePct,
			DaysOnHand: s.Cash.DaysOnHand,
			Trend:      []api.CashPoint{},
		},
		Consolidated: api.Consolidated(s.Consolidated),
		Entities:     []api.Entity{},
		RevenueTrend: []api.RevenuePoint{},
		ActionItems:  []api.ActionItem{},
		Source:       api.SnapshotSource{DataSource: cfg.DataSource, LastSync: cfg.LastSync},
	}

	for _, p := range s.Cash.Trend {
		out.Cash.Trend = append(out.Cash.Trend, api.CashPoint(p))
	}
	for _, e := range s.Entities {
		out.Entities = append(out.Entities, api.Entity{
			Name:             e.Name,
			Status:           e.Status.String(),
			StatusNote:       e.StatusNote,
			Cash:             e.Cash,
			Revenue:          e.Revenue,
			RevenueProjected: e.RevenueProjected,
			RevenuePrior:     e.RevenuePrior,
			EBITDA:           e.EBITDA,
			EBITDAPct:        e.EBITDAPct,
			GrossMarginPct:   e.GrossMarginPct,
			DSCR:             e.DSCR,
			TTMRevenue:       e.TTMRevenue,
			TTMNetIncome:     e.TTMNetIncome,
		})
	}
	for _, p := range s.RevenueTrend {
		out.RevenueTrend = append(out.RevenueTrend, api.RevenuePoint{
			Month:    p.Month,
			ByEntity: maps.Clone(p.ByEntity),
			Total:    p.Total,
		})
	}
	for _, a := range s.ActionItems {
		out.ActionItems = append(out.ActionItems, api.ActionItem{
			Priority: a.Priority,
			Item:     a.Item,
			Context:  a.Context,
			Urgency:  a.Urgency.String(),
		})
	}
	return out
}
