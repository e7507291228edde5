package format

import "github.com/benefique/cfo-times/pkg/models/domain"

// Palette holds the style tokens derived from a status.
type Palette struct {
	Text       string
	Background string
	Bar        string
	Fill       string
	Badge      string
	Header     string
	Glyph      string
	Hex        string
}

var statusPalettes = map[domain.Status]Palette{
	domain.StatusGreen: {
		Text:       "text-emerald-600",
		Background: "bg-emerald-50 border-emerald-200",
		Bar:        "bg-emerald-400",
		Fill:       "bg-emerald-500",
		Badge:      "bg-emerald-100 text-emerald-700",
		Header:     "bg-emerald-600",
		Glyph:      "✓",
		Hex:        "#10b981",
	},
	domain.StatusYellow: {
		Text:       "text-amber-500",
		Background: "bg-amber-50 border-amber-200",
		Bar:        "bg-amber-400",
		Fill:       "bg-amber-400",
		Badge:      "bg-amber-100 text-amber-700",
		Header:     "bg-amber-500",
		Glyph:      "!",
		Hex:        "#f59e0b",
	},
	domain.StatusRed: {
		Text:       "text-red-600",
		Background: "bg-red-50 border-red-200",
		Bar:        "bg-red-400",
		Fill:       "bg-red-400",
		Badge:      "bg-red-100 text-red-700",
		Header:     "bg-red-600",
		Glyph:      "✕",
		Hex:        "#ef4444",
	},
}

// neutralPalette is returned for any value outside GREEN, YELLOW and RED.
var neutralPalette = Palette{
	Text:       "text-stone-500",
	Background: "bg-stone-50 border-stone-200",
	Bar:        "bg-stone-300",
	Fill:       "bg-stone-400",
	Badge:      "bg-stone-100 text-stone-600",
	Header:     "bg-stone-500",
	Glyph:      "?",
	Hex:        "#78716c",
}

// StatusPalette never fails: unknown statuses get the neutral palette.
func StatusPalette(status domain.Status) Palette {
	if p, ok := statusPalettes[status]; ok {
		return p
	}
	return neutralPalette
}

func StatusTextColor(status domain.Status) string {
	return StatusPalette(status).Text
}

func StatusBackground(status domain.Status) string {
	return StatusPalette(status).Background
}

// GaugeColor falls back to the GREEN color for unknown statuses, unlike the
// other lookups which fall back to neutral.
func GaugeColor(status domain.Status) string {
	if p, ok := statusPalettes[status]; ok {
		return p.Hex
	}
	return statusPalettes[domain.StatusGreen].Hex
}

// UrgencyStyle holds the style tokens of an action item.
type UrgencyStyle struct {
	Border string
	Marker string
	Pill   string
	Hex    string
}

var urgencyStyles = map[domain.Urgency]UrgencyStyle{
	domain.UrgencyHigh: {
		Border: "border-red-500",
		Marker: "bg-red-500",
		Pill:   "bg-red-100 text-red-700",
		Hex:    "#ef4444",
	},
	domain.UrgencyMedium: {
		Border: "border-amber-500",
		Marker: "bg-amber-500",
		Pill:   "bg-amber-100 text-amber-700",
		Hex:    "#f59e0b",
	},
}

var defaultUrgencyStyle = UrgencyStyle{
	Border: "border-stone-300",
	Marker: "bg-stone-400",
	Pill:   "bg-stone-100 text-stone-600",
	Hex:    "#a8a29e",
}

// UrgencyPalette styles LOW and any unknown urgency the same way.
func UrgencyPalette(urgency domain.Urgency) UrgencyStyle {
	if s, ok := urgencyStyles[urgency]; ok {
		return s
	}
	return defaultUrgencyStyle
}
