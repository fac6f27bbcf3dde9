package calc

// Stats summarizes a sequence of numbers. An empty input yields the zero
// record (all fields 0) rather than an error; zero is the sentinel for
// "nothing to summarize".
type Stats struct {
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// CalculateStats computes count, sum, min, max and average. Average is
// rounded to 2 decimals.
func CalculateStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	min, max := values[0], values[0]
	sum := 0.0
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Stats{
		Count:   len(values),
		Sum:     sum,
		Min:     min,
		Max:     max,
		Average: Round2(sum / float64(len(values))),
	}
}
