package report

import (
	"fmt"
	"strconv"

	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/view"
)

// Summary flattens the page into renderer-neutral sections, in page order.
// The text, table and JSON formats are all built from it.
func (p *Page) Summary() *domain.Report {
	return &domain.Report{
		Title:   p.Title,
		Edition: p.Header.Edition,
		Period: domain.TimePeriod{
			Start:       p.Header.PeriodStart,
			End:         p.Header.PeriodEnd,
			ReportDate:  p.Header.ReportDate,
			CurrentDay:  p.Header.CurrentDay,
			DaysInMonth: p.Header.DaysInMonth,
			Progress:    p.Header.Progress,
		},
		Sections: []domain.ReportSection{
			p.BigPicture.summary(),
			p.Cash.summary(),
			p.Revenue.summary(),
			p.Debt.summary(),
			p.RuleOf40.summary(),
			p.Units.summary(),
			p.Actions.summary(),
		},
	}
}

func newSection(s view.Section) domain.ReportSection {
	return domain.ReportSection{
		Key:      s.Key,
		Title:    s.Title,
		Subtitle: s.Subtitle,
		Summary:  map[string]string{},
	}
}

func cardDetails(cards []view.MetricCard) []domain.ReportDetail {
	details := make([]domain.ReportDetail, 0, len(cards))
	for _, c := range cards {
		d := domain.ReportDetail{Name: c.Title, Value: c.Value, Description: c.Subtext, Status: c.Status}
		if c.HasTrend {
			d.Unit = c.TrendText
		}
		details = append(details, d)
	}
	return details
}

func (b BigPicture) summary() domain.ReportSection {
	sec := newSection(b.Section)
	sec.Summary["status"] = b.Badge.Label
	sec.Summary["reason"] = b.Reason
	sec.Details = []domain.ReportDetail{
		{Name: b.Runway.Label, Value: b.Runway.Value, Unit: b.Runway.Sublabel},
		{Name: b.RuleOf40.Label, Value: b.RuleOf40.Value, Unit: b.RuleOf40.Sublabel},
	}
	return sec
}

func (c CashHealth) summary() domain.ReportSection {
	sec := newSection(c.Section)
	sec.Summary["change"] = c.Caption.Arrow + " " + c.Caption.Amount
	if c.Caption.Since != "" {
		sec.Summary["change"] += " " + c.Caption.Since
	}
	sec.Details = cardDetails(c.Cards)
	return sec
}

func (r Revenue) summary() domain.ReportSection {
	sec := newSection(r.Section)
	sec.Summary["months"] = strconv.Itoa(len(r.Chart.Labels))
	sec.Details = cardDetails(r.Cards)
	return sec
}

func (d DebtCoverage) summary() domain.ReportSection {
	sec := newSection(d.Section)
	sec.Summary["dscr"] = d.Headline
	if t, ok := d.CurrentTier(); ok {
		sec.Summary["tier"] = fmt.Sprintf("%s (%s)", t.Status, t.Range)
	}
	for _, t := range d.Tiers {
		sec.Details = append(sec.Details, domain.ReportDetail{Name: t.Name, Value: t.Range, Status: t.Status})
	}
	return sec
}

func (r RuleOf40) summary() domain.ReportSection {
	sec := newSection(r.Section)
	sec.Summary["verdict"] = r.Verdict
	sec.Details = []domain.ReportDetail{
		{Name: "Growth Rate", Value: r.Growth},
		{Name: "EBITDA Margin", Value: r.Margin},
		{Name: "Score", Value: r.Score, Unit: fmt.Sprintf("target %d", r.Target), Status: r.Status},
	}
	return sec
}

func (u BusinessUnits) summary() domain.ReportSection {
	sec := newSection(u.Section)
	sec.Summary["units"] = strconv.Itoa(len(u.Cards))
	for _, c := range u.Cards {
		for _, m := range c.Metrics {
			sec.Details = append(sec.Details, domain.ReportDetail{
				Name: c.Name + " " + m.Label, Value: m.Value, Status: c.Status,
			})
		}
		for _, r := range c.Rows {
			sec.Details = append(sec.Details, domain.ReportDetail{
				Name: c.Name + " " + r.Label, Value: r.Value, Status: c.Status,
			})
		}
	}
	return sec
}

func (a ActionItems) summary() domain.ReportSection {
	sec := newSection(a.Section)
	sec.Summary["items"] = strconv.Itoa(len(a.Items))
	for _, item := range a.Items {
		sec.Details = append(sec.Details, domain.ReportDetail{
			Name:        strconv.Itoa(item.Priority),
			Value:       item.Item,
			Unit:        item.Urgency.String(),
			Description: item.Context,
		})
	}
	return sec
}
