package view

import "strings"

type Section struct {
	Key      string
	Icon     string
	Title    string
	Subtitle string
}

const (
	defaultExplainerIcon = "💡"
	emphasisMarker       = "**"
)

// Fragment is a run of explainer text, optionally emphasized.
type Fragment struct {
	Text   string
	Strong bool
}

func Plain(text string) Fragment {
	return Fragment{Text: text}
}

func Strong(text string) Fragment {
	return Fragment{Text: text, Strong: true}
}

// ParseEmphasis splits text on **markers** into plain and strong fragments.
// An unpaired marker is kept as literal text.
func ParseEmphasis(text string) []Fragment {
	parts := strings.Split(text, emphasisMarker)
	if len(parts)%2 == 0 {
		last := len(parts) - 1
		parts[last-1] += emphasisMarker + parts[last]
		parts = parts[:last]
	}

	fragments := make([]Fragment, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		fragments = append(fragments, Fragment{Text: part, Strong: i%2 == 1})
	}
	return fragments
}

// Explainer is an educational callout shown under a section.
type Explainer struct {
	Title string
	Icon  string
	Body  []Fragment
}

func NewExplainer(title, icon string, body ...Fragment) Explainer {
	if icon == "" {
		icon = defaultExplainerIcon
	}
	return Explainer{Title: title, Icon: icon, Body: body}
}

// Text joins the body without emphasis markers.
func (e Explainer) Text() string {
	var b strings.Builder
	for _, f := range e.Body {
		b.WriteString(f.Text)
	}
	return b.String()
}
