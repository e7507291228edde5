package domain

// Report is the renderer-neutral summary of an assembled report page
type Report struct {
	Title    string
	Edition  string
	Period   TimePeriod
	Sections []ReportSection
}

// TimePeriod represents the reporting window of an edition
type TimePeriod struct {
	Start       string
	End         string
	ReportDate  string
	CurrentDay  int
	DaysInMonth int
	Progress    int // percent of the month elapsed
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Key      string
	Title    string
	Subtitle string
	Summary  map[string]string
	Details  []ReportDetail
}

// ReportDetail represents a single displayed value within a section
type ReportDetail struct {
	Name        string
	Value       string
	Unit        string
	Description string
	Status      Status
}
