package api

import "time"

type Snapshot struct {
	Client       Client         `json:"client"`
	Period       Period         `json:"period"`
	Summary      Summary        `json:"summary"`
	Cash         Cash           `json:"cash"`
	Entities     []Entity       `json:"entities"`
	Consolidated Consolidated   `json:"consolidated"`
	RevenueTrend []RevenuePoint `json:"revenue_trend"`
	ActionItems  []ActionItem   `json:"action_items"`
	Source       SnapshotSource `json:"source"`
}

type Client struct {
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Industry string   `json:"industry,omitempty"`
	Location string   `json:"location,omitempty"`
	Entities []string `json:"entities"`
}

type Period struct {
	ReportDate  time.Time `json:"report_date"`
	Edition     int       `json:"edition"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	CurrentDay  int       `json:"current_day"`
	DaysInMonth int       `json:"days_in_month"`
}

type SnapshotSource struct {
	DataSource string    `json:"data_source"`
	LastSync   time.Time `json:"last_sync"`
}

type Summary struct {
	OverallStatus string  `json:"overall_status"`
	StatusReason  string  `json:"status_reason"`
	CashRunway    int     `json:"cash_runway_days"`
	TTMNetIncome  float64 `json:"ttm_net_income"`
	RuleOf40Score float64 `json:"rule_of_40_score"`
}

type CashPoint struct {
	Week string  `json:"week"`
	Cash float64 `json:"cash"`
}

type Cash struct {
	Current    float64     `json:"current"`
	Prior      float64     `json:"prior"`
	Change     float64     `json:"change"`
	ChangePct  float64     `json:"change_pct"`
	DaysOnHand int         `json:"days_on_hand"`
	Trend      []CashPoint `json:"trend"`
}

type Entity struct {
	Name             string  `json:"name"`
	Status           string  `json:"status"`
	StatusNote       string  `json:"status_note,omitempty"`
	Cash             float64 `json:"cash"`
	Revenue          float64 `json:"revenue"`
	RevenueProjected float64 `json:"revenue_projected"`
	RevenuePrior     float64 `json:"revenue_prior"`
	EBITDA           float64 `json:"ebitda"`
	EBITDAPct        float64 `json:"ebitda_pct"`
	GrossMarginPct   float64 `json:"gross_margin_pct"`
	DSCR             float64 `json:"dscr"`
	TTMRevenue       float64 `json:"ttm_revenue"`
	TTMNetIncome     float64 `json:"ttm_net_income"`
}

type Consolidated struct {
	Cash             float64 `json:"cash"`
	Revenue          float64 `json:"revenue"`
	RevenueProjected float64 `json:"revenue_projected"`
	EBITDA           float64 `json:"ebitda"`
	EBITDAPct        float64 `json:"ebitda_pct"`
	TTMRevenue       float64 `json:"ttm_revenue"`
	TTMEBITDA        float64 `json:"ttm_ebitda"`
	TTMEBITDAPct     float64 `json:"ttm_ebitda_pct"`
	TTMNetIncome     float64 `json:"ttm_net_income"`
	DSCR             float64 `json:"dscr"`
	AnnualizedGrowth float64 `json:"annualized_growth"`
}

type RevenuePoint struct {
	Month    string             `json:"month"`
	ByEntity map[string]float64 `json:"by_entity"`
	Total    float64            `json:"total"`
}

type ActionItem struct {
	Priority int    `json:"priority"`
	Item     string `json:"item"`
	Context  string `json:"context,omitempty"`
	Urgency  string `json:"urgency"`
}
