package domain

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ValidationError collects every problem found in a snapshot so callers can
// report them all at once.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSnapshot, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSnapshot
}

func (e *ValidationError) Add(field, format string, args ...any) {
	e.Problems = append(e.Problems, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) Missing(field string) {
	e.Add(field, "is required")
}

// Merge appends the problems of other, if any.
func (e *ValidationError) Merge(other error) {
	var verr *ValidationError
	if errors.As(other, &verr) {
		e.Problems = append(e.Problems, verr.Problems...)
	}
}

// Err returns nil when no problems were recorded.
func (e *ValidationError) Err() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

func (s *Snapshot) validate(verr *ValidationError) {
	s.Config.validate(verr)

	if !s.Summary.OverallStatus.Valid() {
		verr.Add("summary.overall_status", "unknown status %q", s.Summary.OverallStatus)
	}
	requireText(verr, "summary.status_reason", s.Summary.StatusReason)
	if s.Summary.CashRunway < 0 {
		verr.Add("summary.cash_runway", "must not be negative")
	}

	if s.Cash.DaysOnHand < 0 {
		verr.Add("cash.days_on_hand", "must not be negative")
	}
	if len(s.Cash.Trend) != CashTrendWeeks {
		verr.Add("cash.trend", "must have %d points, got %d", CashTrendWeeks, len(s.Cash.Trend))
	}
	for i, p := range s.Cash.Trend {
		requireText(verr, fmt.Sprintf("cash.trend[%d].week", i), p.Week)
	}

	known := make(map[string]bool, len(s.Config.Entities))
	for _, name := range s.Config.Entities {
		known[name] = true
	}

	seen := make(map[string]bool, len(s.Entities))
	for i, e := range s.Entities {
		field := fmt.Sprintf("entities[%d]", i)
		if strings.TrimSpace(e.Name) == "" {
			verr.Missing(field + ".name")
			continue
		}
		if !known[e.Name] {
			verr.Add(field+".name", "entity %q is not listed in config.entities", e.Name)
		}
		if seen[e.Name] {
			verr.Add(field+".name", "duplicate entity %q", e.Name)
		}
		seen[e.Name] = true
		if !e.Status.Valid() {
			verr.Add(field+".status", "unknown status %q", e.Status)
		}
		if e.DSCR < 0 {
			verr.Add(field+".dscr", "must not be negative")
		}
	}
	for _, name := range s.Config.Entities {
		if !seen[name] {
			verr.Add("entities", "missing metrics for entity %q", name)
		}
	}

	if s.Consolidated.DSCR < 0 {
		verr.Add("consolidated.dscr", "must not be negative")
	}

	if len(s.RevenueTrend) != RevenueTrendMonths {
		verr.Add("revenue_trend", "must have %d points, got %d", RevenueTrendMonths, len(s.RevenueTrend))
	}
	for i, p := range s.RevenueTrend {
		field := fmt.Sprintf("revenue_trend[%d]", i)
		requireText(verr, field+".month", p.Month)
		for _, name := range s.Config.Entities {
			if _, ok := p.ByEntity[name]; !ok {
				verr.Add(field+".by_entity", "missing revenue for entity %q", name)
			}
		}
		for _, name := range slices.Sorted(maps.Keys(p.ByEntity)) {
			if !known[name] {
				verr.Add(field+".by_entity", "unknown entity %q", name)
			}
		}
	}

	for i, item := range s.ActionItems {
		field := fmt.Sprintf("action_items[%d]", i)
		if item.Priority < 1 {
			verr.Add(field+".priority", "must be 1 or greater")
		}
		requireText(verr, field+".item", item.Item)
		if !item.Urgency.Valid() {
			verr.Add(field+".urgency", "unknown urgency %q", item.Urgency)
		}
	}
}

func (c *ReportConfig) validate(verr *ValidationError) {
	requireText(verr, "config.client_name", c.ClientName)
	requireText(verr, "config.client_slug", c.ClientSlug)
	requireText(verr, "config.data_source", c.DataSource)
	requireText(verr, "config.publisher.masthead", c.Publisher.Masthead)

	if c.ReportDate.IsZero() {
		verr.Missing("config.report_date")
	}
	if c.LastSync.IsZero() {
		verr.Missing("config.last_sync")
	}

	if c.DaysInMonth <= 0 {
		verr.Add("config.days_in_month", "must be positive")
	}
	if c.CurrentDay < 0 {
		verr.Add("config.current_day", "must not be negative")
	}
	if c.DaysInMonth > 0 && c.CurrentDay > c.DaysInMonth {
		verr.Add("config.current_day", "must not exceed days_in_month (%d > %d)", c.CurrentDay, c.DaysInMonth)
	}

	if len(c.Entities) == 0 {
		verr.Missing("config.entities")
	}
	if !c.IsMultiEntity && len(c.Entities) > 1 {
		verr.Add("config.is_multi_entity", "must be true when %d entities are listed", len(c.Entities))
	}
	names := make(map[string]bool, len(c.Entities))
	for i, name := range c.Entities {
		field := fmt.Sprintf("config.entities[%d]", i)
		if strings.TrimSpace(name) == "" {
			verr.Missing(field)
			continue
		}
		if names[name] {
			verr.Add(field, "duplicate entity %q", name)
		}
		names[name] = true
	}

	if !hexColor.MatchString(c.Theme.PrimaryColor) {
		verr.Add("config.theme.primary_color", "must be a #rrggbb color, got %q", c.Theme.PrimaryColor)
	}
	if !hexColor.MatchString(c.Theme.SecondaryColor) {
		verr.Add("config.theme.secondary_color", "must be a #rrggbb color, got %q", c.Theme.SecondaryColor)
	}

	if c.EntityExplainer != nil {
		requireText(verr, "config.entity_explainer.title", c.EntityExplainer.Title)
		requireText(verr, "config.entity_explainer.body", c.EntityExplainer.Body)
	}
}

func requireText(verr *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		verr.Missing(field)
	}
}
