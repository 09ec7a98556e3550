package outrank

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

// ErrDegenerateInput reports an empty criteria set: no preference matrix can
// be built and no flow is defined.
var ErrDegenerateInput = eris.New("outrank: empty criteria set")

// FlowResult holds the outranking flows of the representative row.
// Net is always Leaving - Entering.
type FlowResult struct {
	Leaving  float64 `json:"leaving_flow"`
	Entering float64 `json:"entering_flow"`
	Net      float64 `json:"net_flow"`
}

// Ranking is the qualitative classification of a net flow.
type Ranking struct {
	Level   model.ScoreLevel `json:"level"`
	Score   float64          `json:"score"`
	NetFlow float64          `json:"net_flow"`
}

// ComputeFlows reduces a preference matrix to the flow of its first indexed
// row, the documented caller contract for single-site category scoring. An
// empty matrix returns ErrDegenerateInput; a 1x1 matrix has no pairwise
// information and reports neutral zero flows.
func ComputeFlows(m Matrix) (FlowResult, error) {
	n := m.Size()
	if n == 0 {
		return FlowResult{}, ErrDegenerateInput
	}
	if n == 1 {
		return FlowResult{}, nil
	}

	var leaving, entering float64
	for j := 0; j < n; j++ {
		leaving += m.Cells[0][j]
		entering += m.Cells[j][0]
	}
	leaving /= float64(n - 1)
	entering /= float64(n - 1)

	return FlowResult{
		Leaving:  leaving,
		Entering: entering,
		Net:      leaving - entering,
	}, nil
}

// Classify maps a flow result to a qualitative level and a 0-100 score.
// Boundaries: net > 0.1 excellent; 0 < net <= 0.1 good; -0.1 < net <= 0
// fair; net <= -0.1 poor.
func Classify(f FlowResult) Ranking {
	net := f.Net
	var level model.ScoreLevel
	var score float64

	switch {
	case net > 0.1:
		level = model.LevelExcellent
		score = math.Min(net*10, 100)
	case net > 0:
		level = model.LevelGood
		score = 70 + net*30
	case net > -0.1:
		level = model.LevelFair
		score = 50 + (net+0.1)*200
	default:
		level = model.LevelPoor
		score = math.Max(net*50, 0)
	}

	return Ranking{
		Level:   level,
		Score:   round2(score),
		NetFlow: round4(net),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
