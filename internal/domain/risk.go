package domain

import "math"

// RiskTier classifies the effective temperature against the lethal threshold.
type RiskTier string

const (
	TierStable   RiskTier = "STABLE"
	TierHighRisk RiskTier = "HIGH_RISK"
	TierCritical RiskTier = "CRITICAL"
	TierLethal   RiskTier = "LETHAL"
)

// RiskAssessment is the derived thermal-metabolic state for one query.
// It is recomputed fresh on every assessment and never cached.
type RiskAssessment struct {
	EffectiveTemp   float64  `json:"effective_temperature"`
	SMR             float64  `json:"smr"`
	Q10             float64  `json:"q10"`
	LethalThreshold float64  `json:"lethal_threshold"`
	RiskScore       int      `json:"risk_score"`
	Tier            RiskTier `json:"risk_tier"`
	SafetyMargin    float64  `json:"safety_margin"`
}

const (
	// baseLethalLimit is the thermal ceiling for a fully fed animal.
	baseLethalLimit = 31.5
	// starvationPenalty is the maximum threshold reduction at NI = 0.
	starvationPenalty = 1.07
)

// LethalThreshold returns the temperature at which risk is maximal,
// narrowed by nutritional stress. Depends only on the nutritional index.
func LethalThreshold(ni float64) float64 {
	return baseLethalLimit - starvationPenalty*(1-ni)
}

// SMR returns the standard metabolic rate in mg O₂ per kg per hour.
func SMR(t float64) float64 {
	return 72.4 * math.Exp(0.0567*t)
}

// Q10 returns the thermal sensitivity coefficient, stepping up at 25°C inclusive.
func Q10(t float64) float64 {
	if t >= 25 {
		return 2.45
	}
	return 2.07
}

// EvaluateRisk derives the full assessment for an effective temperature and
// nutritional index. Total for any finite input: no branch can divide by zero
// and the score is always within [0, 100].
func EvaluateRisk(t, ni float64) RiskAssessment {
	threshold := LethalThreshold(ni)
	tier, score := classify(t, threshold)
	return RiskAssessment{
		EffectiveTemp:   t,
		SMR:             SMR(t),
		Q10:             Q10(t),
		LethalThreshold: threshold,
		RiskScore:       score,
		Tier:            tier,
		SafetyMargin:    threshold - t,
	}
}

// classify assigns the risk tier and score, first match wins.
func classify(t, threshold float64) (RiskTier, int) {
	switch {
	case t >= threshold:
		return TierLethal, 100
	case t >= threshold-2:
		return TierCritical, clampScore(criticalScore(t, threshold))
	case t >= 25:
		return TierHighRisk, clampScore(highRiskScore(t, threshold))
	default:
		return TierStable, clampScore(math.Round(t / 25 * 50))
	}
}

// criticalScore interpolates 75–100 across the two degrees below the threshold.
func criticalScore(t, threshold float64) float64 {
	return math.Round(75 + (t-(threshold-2))/2*25)
}

// highRiskScore interpolates 50–75 across [25, threshold−2). The band
// degenerates to zero or negative width once the threshold drops to 27°C or
// below; the input is then scored on the critical formula instead of
// dividing by a non-positive band.
func highRiskScore(t, threshold float64) float64 {
	band := threshold - 2 - 25
	if band <= 0 {
		return criticalScore(t, threshold)
	}
	return math.Round(50 + (t-25)/band*25)
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
