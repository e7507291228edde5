// Package domaintest provides snapshot fixtures for tests.
package domaintest

import (
	"time"

	"github.com/benefique/cfo-times/pkg/models/domain"
)

// Titan returns the January 2026 Titan Group edition as an unvalidated value.
// Each call returns fresh slices and maps, so tests may modify the result.
func Titan() domain.Snapshot {
	return domain.Snapshot{
		Config: domain.ReportConfig{
			ClientName:      "Titan Group",
			ClientSlug:      "titan",
			Industry:        "Marine & Industrial Services",
			Location:        "Hollywood, Florida",
			ReportDate:      time.Date(2026, time.January, 24, 0, 0, 0, 0, time.UTC),
			EditionNumber:   1,
			PeriodStart:     "February 2025",
			PeriodEnd:       "January 2026",
			CurrentDay:      24,
			DaysInMonth:     31,
			IsMultiEntity:   true,
			Entities:        []string{"Distribution", "Services"},
			HasConsolidated: true,
			Theme:           domain.Theme{PrimaryColor: "#1e3a5f", SecondaryColor: "#166534"},
			DataSource:      "QuickBooks via g-accon",
			LastSync:        time.Date(2026, time.January, 24, 6, 22, 13, 0, time.UTC),
			Publisher: domain.Publisher{
				Firm:      "Benefique Fractional CFO",
				Masthead:  "The Financial Times",
				Title:     "The Benefique Financial Times",
				Byline:    "Published by Benefique Fractional CFO Services",
				Copyright: "© 2026 Benefique Capital LLC",
			},
			ContactEmail: "gerrit@benefique.com",
			NextEdition:  "Saturday, February 1, 2026",
			EntityExplainer: &domain.Explainer{
				Title: "Distribution vs Services",
				Body: "**Distribution** sells parts and equipment: it has inventory and longer payment cycles. " +
					"**Services** provides labor and installation: it gets paid faster and has higher margins. " +
					"Both units are profitable. Distribution's revenue dip this month is likely timing, not a trend.",
			},
		},
		Summary: domain.SummaryMetrics{
			OverallStatus: domain.StatusGreen,
			StatusReason:  "Strong January Performance",
			CashRunway:    50,
			TTMNetIncome:  440520,
			RuleOf40Score: 40,
		},
		Cash: domain.CashSnapshot{
			Current:    193031,
			Prior:      139918,
			Change:     53113,
			ChangePct:  38,
			DaysOnHand: 50,
			Trend: []domain.CashPoint{
				{Week: "Dec 27", Cash: 166675},
				{Week: "Jan 3", Cash: 119415},
				{Week: "Jan 10", Cash: 188960},
				{Week: "Jan 17", Cash: 179300},
				{Week: "Jan 24", Cash: 193031},
			},
		},
		Entities: []domain.EntityMetrics{
			{
				Name:             "Distribution",
				Status:           domain.StatusYellow,
				StatusNote:       "Revenue down 35% MoM",
				Cash:             75742,
				Revenue:          168320,
				RevenueProjected: 217510,
				RevenuePrior:     253638,
				EBITDA:           23273,
				EBITDAPct:        14,
				GrossMarginPct:   38,
				DSCR:             2.44,
				TTMRevenue:       3112257,
				TTMNetIncome:     328253,
			},
			{
				Name:             "Services",
				Status:           domain.StatusGreen,
				StatusNote:       "Revenue up 16% MoM",
				Cash:             117289,
				Revenue:          311386,
				RevenueProjected: 402466,
				RevenuePrior:     269217,
				EBITDA:           133820,
				EBITDAPct:        43,
				GrossMarginPct:   69,
				DSCR:             1.42,
				TTMRevenue:       3221203,
				TTMNetIncome:     112267,
			},
		},
		Consolidated: domain.ConsolidatedMetrics{
			Cash:             193031,
			Revenue:          479706,
			RevenueProjected: 619976,
			EBITDA:           157093,
			EBITDAPct:        33,
			TTMRevenue:       6333460,
			TTMEBITDA:        533941,
			TTMEBITDAPct:     8,
			TTMNetIncome:     440520,
			DSCR:             1.93,
			AnnualizedGrowth: 32,
		},
		RevenueTrend: []domain.RevenueTrendPoint{
			point("Aug", 195767, 280093, 475860),
			point("Sep", 188074, 158400, 346474),
			point("Oct", 494486, 294372, 788858),
			point("Nov", 308689, 281942, 590631),
			point("Dec", 253638, 269217, 522855),
			point("Jan*", 217510, 402466, 619976),
		},
		ActionItems: []domain.ActionItem{
			{Priority: 1, Item: "Verify Services payroll spike (+181%)", Context: "Unusually high - may be catch-up or bonus", Urgency: domain.UrgencyHigh},
			{Priority: 2, Item: "Check Distribution revenue timing", Context: "Down 35% MoM - likely timing, not trend", Urgency: domain.UrgencyMedium},
			{Priority: 3, Item: "Schedule intercompany settlement", Context: "Services owes Distribution ~$35K", Urgency: domain.UrgencyLow},
		},
	}
}

// MustTitan returns the validated Titan snapshot and panics if it is invalid.
func MustTitan() *domain.Snapshot {
	s, err := domain.NewSnapshot(Titan())
	if err != nil {
		panic(err)
	}
	return s
}

func point(month string, distribution, services, total float64) domain.RevenueTrendPoint {
	return domain.RevenueTrendPoint{
		Month:    month,
		ByEntity: map[string]float64{"Distribution": distribution, "Services": services},
		Total:    total,
	}
}
