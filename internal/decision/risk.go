package decision

import "github.com/gridpoint-labs/sitescout/internal/model"

// Risk trigger thresholds.
const (
	riskConstraintCount   = 2   // more than this many land constraints
	riskCoverageThreshold = 0.3 // renewable coverage below this
)

// Risk descriptions and their paired mitigations; appended together so the
// two slices stay index-aligned.
const (
	riskLandConstraints = "Multiple land-use constraints raise construction risk."
	mitLandConstraints  = "Commission a detailed geological survey and environmental assessment."

	riskEnergySupply = "Low renewable coverage raises energy supply risk."
	mitEnergySupply  = "Plan multiple supply sources and on-site storage."

	riskGridStability = "Weak grid stability raises power delivery risk."
	mitGridStability  = "Provision storage systems and backup power."
)

// AssessRisk derives the qualitative risk profile from the land and energy
// payloads. The level starts low, escalates to medium on constraint count or
// coverage triggers, and to high on a tight or insufficient grid regardless
// of the other factors.
func AssessRisk(land model.LandAnalysis, energy model.EnergyAssessment) model.RiskProfile {
	profile := model.RiskProfile{Level: model.RiskLow}

	if len(land.Constraints) > riskConstraintCount {
		profile.Level = model.RiskMedium
		profile.Risks = append(profile.Risks, riskLandConstraints)
		profile.Mitigations = append(profile.Mitigations, mitLandConstraints)
	}

	if energy.Storage.RenewableCoverage < riskCoverageThreshold {
		profile.Level = model.RiskMedium
		profile.Risks = append(profile.Risks, riskEnergySupply)
		profile.Mitigations = append(profile.Mitigations, mitEnergySupply)
	}

	switch energy.Grid.Stability {
	case model.GridStabilityTight, model.GridStabilityInsufficient:
		profile.Level = model.RiskHigh
		profile.Risks = append(profile.Risks, riskGridStability)
		profile.Mitigations = append(profile.Mitigations, mitGridStability)
	}

	return profile
}
