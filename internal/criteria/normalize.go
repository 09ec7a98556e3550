package criteria

// Normalize maps raw criterion values onto [0,1] respecting each criterion's
// orientation. Benefit criteria scale as value/100, cost criteria as
// 1 - value/100, both clamped into [0,1]. Values without a registered
// criterion, and criteria without a supplied value, are dropped silently.
// Pure and deterministic.
func Normalize(values map[string]float64, cat Catalog) map[string]float64 {
	out := make(map[string]float64, len(cat.Criteria))
	for _, cr := range cat.Criteria {
		v, ok := values[cr.Name]
		if !ok {
			continue
		}
		var n float64
		if cr.Orientation == Cost {
			n = 1 - v/100
		} else {
			n = v / 100
		}
		out[cr.Name] = clamp01(n)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
