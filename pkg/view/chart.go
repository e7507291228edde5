package view

// ChartType names the chart primitives handed to the client-side chart library.
type ChartType string

const (
	ChartArea ChartType = "area"
	ChartBar  ChartType = "bar"
)

// Dataset is one ordered series of a chart.
type Dataset struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`
	Fill   bool      `json:"fill,omitempty"`
	Stack  string    `json:"stack,omitempty"`
}

type ChartOptions struct {
	Stacked      bool `json:"stacked,omitempty"`
	CurrencyAxis bool `json:"currencyAxis,omitempty"`
	Height       int  `json:"height"`
}

// ChartSpec carries everything the chart library needs: labels, series and
// display options. Axis rendering, tooltips and sizing are left to the library.
type ChartSpec struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Type     ChartType    `json:"type"`
	Labels   []string     `json:"labels"`
	Datasets []Dataset    `json:"datasets"`
	Options  ChartOptions `json:"options"`
}
