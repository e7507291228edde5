package store

// SnapshotDocument is the on-disk form of a report snapshot, read from YAML or
// JSON. Numeric fields are pointers so that an absent value can be told apart
// from zero.
type SnapshotDocument struct {
	Config       *ConfigDocument       `yaml:"config" json:"config"`
	Summary      *SummaryDocument      `yaml:"summary" json:"summary"`
	Cash         *CashDocument         `yaml:"cash" json:"cash"`
	Entities     []EntityDocument      `yaml:"entities" json:"entities"`
	Consolidated *ConsolidatedDocument `yaml:"consolidated" json:"consolidated"`
	RevenueTrend []RevenuePoint        `yaml:"revenue_trend" json:"revenue_trend"`
	ActionItems  []ActionItemDocument  `yaml:"action_items" json:"action_items"`
}

type ConfigDocument struct {
	ClientName      string             `yaml:"client_name" json:"client_name"`
	ClientSlug      string             `yaml:"client_slug" json:"client_slug"`
	Industry        string             `yaml:"industry" json:"industry"`
	Location        string             `yaml:"location" json:"location"`
	ReportDate      string             `yaml:"report_date" json:"report_date"`
	EditionNumber   int                `yaml:"edition_number" json:"edition_number"`
	PeriodStart     string             `yaml:"period_start" json:"period_start"`
	PeriodEnd       string             `yaml:"period_end" json:"period_end"`
	CurrentDay      *int               `yaml:"current_day" json:"current_day"`
	DaysInMonth     *int               `yaml:"days_in_month" json:"days_in_month"`
	IsMultiEntity   bool               `yaml:"is_multi_entity" json:"is_multi_entity"`
	Entities        []string           `yaml:"entities" json:"entities"`
	HasConsolidated bool               `yaml:"has_consolidated" json:"has_consolidated"`
	Theme           *ThemeDocument     `yaml:"theme" json:"theme"`
	DataSource      string             `yaml:"data_source" json:"data_source"`
	LastSync        string             `yaml:"last_sync" json:"last_sync"`
	Publisher       *PublisherDocument `yaml:"publisher" json:"publisher"`
	ContactEmail    string             `yaml:"contact_email" json:"contact_email"`
	NextEdition     string             `yaml:"next_edition" json:"next_edition"`
	EntityExplainer *ExplainerDocument `yaml:"entity_explainer" json:"entity_explainer"`
}

type ThemeDocument struct {
	PrimaryColor   string `yaml:"primary_color" json:"primary_color"`
	SecondaryColor string `yaml:"secondary_color" json:"secondary_color"`
}

type PublisherDocument struct {
	Firm      string `yaml:"firm" json:"firm"`
	Masthead  string `yaml:"masthead" json:"masthead"`
	Title     string `yaml:"title" json:"title"`
	Byline    string `yaml:"byline" json:"byline"`
	Copyright string `yaml:"copyright" json:"copyright"`
}

type ExplainerDocument struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

type SummaryDocument struct {
	OverallStatus string   `yaml:"overall_status" json:"overall_status"`
	StatusReason  string   `yaml:"status_reason" json:"status_reason"`
	CashRunway    *int     `yaml:"cash_runway" json:"cash_runway"`
	TTMNetIncome  *float64 `yaml:"ttm_net_income" json:"ttm_net_income"`
	RuleOf40Score *float64 `yaml:"rule_of_40_score" json:"rule_of_40_score"`
}

type CashPoint struct {
	Week string   `yaml:"week" json:"week"`
	Cash *float64 `yaml:"cash" json:"cash"`
}

type CashDocument struct {
	Current    *float64    `yaml:"current" json:"current"`
	Prior      *float64    `yaml:"prior" json:"prior"`
	Change     *float64    `yaml:"change" json:"change"`
	ChangePct  *float64    `yaml:"change_pct" json:"change_pct"`
	DaysOnHand *int        `yaml:"days_on_hand" json:"days_on_hand"`
	Trend      []CashPoint `yaml:"trend" json:"trend"`
}

type EntityDocument struct {
	Name             string   `yaml:"name" json:"name"`
	Status           string   `yaml:"status" json:"status"`
	StatusNote       string   `yaml:"status_note" json:"status_note"`
	Cash             *float64 `yaml:"cash" json:"cash"`
	Revenue          *float64 `yaml:"revenue" json:"revenue"`
	RevenueProjected *float64 `yaml:"revenue_projected" json:"revenue_projected"`
	RevenuePrior     *float64 `yaml:"revenue_prior" json:"revenue_prior"`
	EBITDA           *float64 `yaml:"ebitda" json:"ebitda"`
	EBITDAPct        *float64 `yaml:"ebitda_pct" json:"ebitda_pct"`
	GrossMarginPct   *float64 `yaml:"gross_margin_pct" json:"gross_margin_pct"`
	DSCR             *float64 `yaml:"dscr" json:"dscr"`
	TTMRevenue       *float64 `yaml:"ttm_revenue" json:"ttm_revenue"`
	TTMNetIncome     *float64 `yaml:"ttm_net_income" json:"ttm_net_income"`
}

type ConsolidatedDocument struct {
	Cash             *float64 `yaml:"cash" json:"cash"`
	Revenue          *float64 `yaml:"revenue" json:"revenue"`
	RevenueProjected *float64 `yaml:"revenue_projected" json:"revenue_projected"`
	EBITDA           *float64 `yaml:"ebitda" json:"ebitda"`
	EBITDAPct        *float64 `yaml:"ebitda_pct" json:"ebitda_pct"`
	TTMRevenue       *float64 `yaml:"ttm_revenue" json:"ttm_revenue"`
	TTMEBITDA        *float64 `yaml:"ttm_ebitda" json:"ttm_ebitda"`
	TTMEBITDAPct     *float64 `yaml:"ttm_ebitda_pct" json:"ttm_ebitda_pct"`
	TTMNetIncome     *float64 `yaml:"ttm_net_income" json:"ttm_net_income"`
	DSCR             *float64 `yaml:"dscr" json:"dscr"`
	AnnualizedGrowth *float64 `yaml:"annualized_growth" json:"annualized_growth"`
}

type RevenuePoint struct {
	Month    string             `yaml:"month" json:"month"`
	ByEntity map[string]float64 `yaml:"by_entity" json:"by_entity"`
	Total    *float64           `yaml:"total" json:"total"`
}

type ActionItemDocument struct {
	Priority *int   `yaml:"priority" json:"priority"`
	Item     string `yaml:"item" json:"item"`
	Context  string `yaml:"context" json:"context"`
	Urgency  string `yaml:"urgency" json:"urgency"`
}
