package api

type Report struct {
	Title    string          `json:"title"`
	Edition  string          `json:"edition"`
	Period   TimePeriod      `json:"period"`
	Sections []ReportSection `json:"sections"`
}

type TimePeriod struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	ReportDate  string `json:"report_date"`
	CurrentDay  int    `json:"current_day"`
	DaysInMonth int    `json:"days_in_month"`
	Progress    int    `json:"month_progress_pct"`
}

type ReportSection struct {
	Key      string            `json:"key"`
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle,omitempty"`
	Summary  map[string]string `json:"summary,omitempty"`
	Details  []ReportDetail    `json:"details"`
}

type ReportDetail struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}
