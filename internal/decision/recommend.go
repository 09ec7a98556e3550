package decision

import "github.com/gridpoint-labs/sitescout/internal/model"

// remediationThreshold is the category score below which a targeted
// remediation sentence is added.
const remediationThreshold = 60.0

var overallSentences = map[model.DecisionLevel]string{
	model.DecisionStronglyRecommend:    "The site is highly suitable for the facility; prioritize it among the candidates.",
	model.DecisionRecommend:            "The site is suitable for the facility; proceed to detailed planning.",
	model.DecisionConsider:             "The site is broadly suitable but several issues need resolution before committing.",
	model.DecisionNotRecommended:       "Building at this site faces significant difficulties; evaluate carefully before proceeding.",
	model.DecisionStronglyNotRecommend: "The site is not suitable for the facility; look for alternative locations.",
}

var remediationSentences = map[model.Category]string{
	model.CategoryLand:          "Land suitability is low; look for a more suitable parcel.",
	model.CategoryEnergy:        "Energy resources are limited; plan for a mix of supply options.",
	model.CategoryGrid:          "Grid capacity is insufficient; consider on-site storage or a capacity upgrade request.",
	model.CategoryEconomic:      "Economic feasibility is weak; restructure costs before committing.",
	model.CategoryEnvironmental: "Environmental impact is high; adopt a lower-impact construction plan.",
}

// Recommendations generates the narrative: one sentence for the overall
// decision level plus one remediation sentence per category scoring below
// the threshold, in fixed category order.
func Recommendations(level model.DecisionLevel, scores map[model.Category]model.CategoryScore) []string {
	out := []string{overallSentences[level]}
	for _, cat := range model.Categories() {
		s, ok := scores[cat]
		if !ok {
			continue
		}
		if s.Score < remediationThreshold {
			out = append(out, remediationSentences[cat])
		}
	}
	return out
}
