package format

import "github.com/benefique/cfo-times/pkg/models/domain"

const (
	RunwayHealthyDays = 45
	RunwayCautionDays = 30

	DSCRHealthy = 1.25
	DSCRCaution = 1.0

	RuleOf40Target  = 40
	RuleOf40Caution = 25
	// RuleOf40Scale is the score at which the Rule of 40 bar is full.
	RuleOf40Scale = 60
)

func CashRunwayStatus(days int) domain.Status {
	switch {
	case days >= RunwayHealthyDays:
		return domain.StatusGreen
	case days >= RunwayCautionDays:
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

func DSCRStatus(dscr float64) domain.Status {
	switch {
	case dscr >= DSCRHealthy:
		return domain.StatusGreen
	case dscr >= DSCRCaution:
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

func RuleOf40Status(score float64) domain.Status {
	switch {
	case score >= RuleOf40Target:
		return domain.StatusGreen
	case score >= RuleOf40Caution:
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

func RuleOf40Verdict(score float64) string {
	switch RuleOf40Status(score) {
	case domain.StatusGreen:
		return "🎉 Target Achieved!"
	case domain.StatusYellow:
		return "Getting There"
	default:
		return "Needs Work"
	}
}

// SignStatus is GREEN for non-negative amounts and RED otherwise.
func SignStatus(amount float64) domain.Status {
	if amount >= 0 {
		return domain.StatusGreen
	}
	return domain.StatusRed
}

// TrendStatus is GREEN for growth and YELLOW for any decline.
func TrendStatus(change float64) domain.Status {
	if change >= 0 {
		return domain.StatusGreen
	}
	return domain.StatusYellow
}
