package domain

// AdvisoryLevel is the management recommendation band for a risk score.
type AdvisoryLevel string

const (
	AdvisoryNormal    AdvisoryLevel = "normal"
	AdvisoryElevated  AdvisoryLevel = "elevated"
	AdvisoryHighAlert AdvisoryLevel = "high-alert"
	AdvisoryEmergency AdvisoryLevel = "emergency"
)

// AdvisoryFor maps a risk score to its advisory level.
func AdvisoryFor(riskScore int) AdvisoryLevel {
	switch {
	case riskScore >= 85:
		return AdvisoryEmergency
	case riskScore >= 70:
		return AdvisoryHighAlert
	case riskScore >= 50:
		return AdvisoryElevated
	default:
		return AdvisoryNormal
	}
}

// Actions returns the operational checklist for the advisory level.
func (a AdvisoryLevel) Actions() []string {
	switch a {
	case AdvisoryEmergency:
		return []string{
			"Immediate harvest or stock relocation",
			"Cease feeding (minimize metabolic load)",
			"Maximize aeration systems",
			"Monitor mortality hourly",
		}
	case AdvisoryHighAlert:
		return []string{
			"Reduce feeding by 50%",
			"Increase water exchange rate",
			"Deploy emergency aeration",
			"Prepare for early harvest",
		}
	case AdvisoryElevated:
		return []string{
			"Reduce feeding by 30%",
			"Increase monitoring frequency",
			"Ensure optimal aeration",
			"Review stocking density",
		}
	default:
		return []string{
			"Standard feeding protocols",
			"Routine monitoring",
			"Continue growth optimization",
		}
	}
}
