package view

import (
	"github.com/benefique/cfo-times/pkg/format"
	"github.com/benefique/cfo-times/pkg/models/domain"
)

type BadgeSize string

const (
	BadgeNormal BadgeSize = "normal"
	BadgeLarge  BadgeSize = "large"
)

type StatusBadge struct {
	Status      domain.Status
	Label       string
	Glyph       string
	Classes     string
	SizeClasses string
}

// NewStatusBadge renders a glyph and label for the status. Size only changes
// the type scale.
func NewStatusBadge(status domain.Status, size BadgeSize) StatusBadge {
	palette := format.StatusPalette(status)

	sizeClasses := "text-sm px-3 py-1"
	if size == BadgeLarge {
		sizeClasses = "text-lg px-4 py-2"
	}

	label := status.String()
	if label == "" {
		label = "UNKNOWN"
	}

	return StatusBadge{
		Status:      status,
		Label:       label,
		Glyph:       palette.Glyph,
		Classes:     palette.Badge,
		SizeClasses: sizeClasses,
	}
}
