package stats

import (
	"math"

	"goplots/internal/errors"

	mstats "github.com/montanaflynn/stats"
)

// Description holds the elementary summary used by the raw-data endpoints.
type Description struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
}

// Describe computes count, mean, median and the Bessel-corrected sample
// standard deviation. Std is 0 for fewer than two values.
func Describe(values []float64) (Description, error) {
	if len(values) == 0 {
		return Description{}, errors.EmptyInput("expected non-empty array of numbers")
	}

	data := mstats.Float64Data(values)

	mean, err := mstats.Mean(data)
	if err != nil {
		return Description{}, errors.Wrap(err, "failed to compute mean")
	}

	// Median sorts a copy, the caller's slice keeps its order.
	median, err := mstats.Median(data)
	if err != nil {
		return Description{}, errors.Wrap(err, "failed to compute median")
	}

	std := 0.0
	if len(values) >= 2 {
		std, err = mstats.StandardDeviationSample(data)
		if err != nil {
			return Description{}, errors.Wrap(err, "failed to compute standard deviation")
		}
		if math.IsNaN(std) {
			std = 0
		}
	}

	return Description{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		Std:    std,
	}, nil
}
