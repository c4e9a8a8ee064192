package models

import (
	"encoding/json"
	"fmt"

	"goplots/internal/errors"
)

// Payload is a request body for one chart kind. Validate checks the
// cross-field shape rules that binding tags cannot express.
type Payload interface {
	Validate() error
}

// SummaryStats mirrors the upstream summary output. Absent optional fields
// are rendered as a placeholder glyph.
type SummaryStats struct {
	Count  *int     `json:"count" binding:"required,min=0"`
	Mean   *float64 `json:"mean,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Std    *float64 `json:"std,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	IQR    *float64 `json:"iqr,omitempty"`
	MAD    *float64 `json:"mad,omitempty"`
}

// Validate has nothing to cross-check; every field stands alone.
func (s *SummaryStats) Validate() error {
	return nil
}

// Quantile is a (probability, value) pair, encoded as a two-element array.
type Quantile struct {
	P     float64
	Value float64
}

func (q *Quantile) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("quantile must be a [probability, value] pair, got %d elements", len(pair))
	}
	q.P, q.Value = pair[0], pair[1]
	return nil
}

func (q Quantile) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{q.P, q.Value})
}

// DistributionHistogram is a pre-binned histogram with optional shape statistics.
type DistributionHistogram struct {
	Counts         []int      `json:"counts" binding:"required,dive,min=0"`
	Edges          []float64  `json:"edges" binding:"required"`
	Quantiles      []Quantile `json:"quantiles" binding:"required"`
	Skewness       *float64   `json:"skewness,omitempty"`
	ExcessKurtosis *float64   `json:"excess_kurtosis,omitempty"`
	EntropyBits    *float64   `json:"entropy_bits,omitempty"`
}

func (d *DistributionHistogram) Validate() error {
	if len(d.Edges) != len(d.Counts)+1 {
		return errors.ShapeMismatch("edges must be length counts+1")
	}
	return nil
}

// EmpiricalCDF is a sampled ECDF: ps[i] is the fraction of observations <= xs[i].
type EmpiricalCDF struct {
	Xs []float64 `json:"xs" binding:"required"`
	Ps []float64 `json:"ps" binding:"required"`
}

func (e *EmpiricalCDF) Validate() error {
	if len(e.Xs) != len(e.Ps) {
		return errors.ShapeMismatch("xs and ps must be same length")
	}
	return nil
}

// QQData pairs sample quantiles with Normal theoretical quantiles.
type QQData struct {
	SampleQuantiles      []float64 `json:"sample_quantiles" binding:"required"`
	TheoreticalQuantiles []float64 `json:"theoretical_quantiles" binding:"required"`
	MuHat                *float64  `json:"mu_hat" binding:"required"`
	SigmaHat             *float64  `json:"sigma_hat" binding:"required"`
}

func (q *QQData) Validate() error {
	if len(q.SampleQuantiles) != len(q.TheoreticalQuantiles) || len(q.SampleQuantiles) == 0 {
		return errors.ShapeMismatch("sample_quantiles and theoretical_quantiles must match and be non-empty")
	}
	return nil
}

// CorrelationMatrix is a square matrix flattened row-major.
type CorrelationMatrix struct {
	Size   *int      `json:"size" binding:"required,min=0"`
	Names  []string  `json:"names,omitempty"`
	Matrix []float64 `json:"matrix" binding:"required"`
}

func (c *CorrelationMatrix) Validate() error {
	n := c.N()
	// Compare by division: n*n wraps for sizes above 2^32.
	if (n == 0 && len(c.Matrix) != 0) || (n > 0 && (len(c.Matrix)%n != 0 || len(c.Matrix)/n != n)) {
		return errors.ShapeMismatch("matrix length must be size*size")
	}
	if len(c.Names) > 0 && len(c.Names) != n {
		return errors.ShapeMismatch("names length must equal size")
	}
	return nil
}

// N returns the matrix dimension, zero when size is absent.
func (c *CorrelationMatrix) N() int {
	if c.Size == nil {
		return 0
	}
	return *c.Size
}

// Labels returns the axis labels: the supplied names, else 1-based positions.
func (c *CorrelationMatrix) Labels() []string {
	if len(c.Names) > 0 {
		return c.Names
	}
	labels := make([]string, c.N())
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}

// Outliers lists flagged positions in a series and the values found there.
type Outliers struct {
	Indices []int     `json:"indices" binding:"required"`
	Values  []float64 `json:"values" binding:"required"`
}

// SeriesWithOutliers is a series plus optional outlier markers.
type SeriesWithOutliers struct {
	Values   []float64 `json:"values" binding:"required"`
	Outliers *Outliers `json:"outliers,omitempty"`
}

// Validate never rejects; out-of-range outliers are dropped by Sanitize.
func (s *SeriesWithOutliers) Validate() error {
	return nil
}

// Sanitize returns the outlier indices that fall inside [0, len(values)),
// in their original order. The payload itself is left untouched.
func (s *SeriesWithOutliers) Sanitize() []int {
	if s.Outliers == nil {
		return nil
	}
	kept := make([]int, 0, len(s.Outliers.Indices))
	for _, idx := range s.Outliers.Indices {
		if idx >= 0 && idx < len(s.Values) {
			kept = append(kept, idx)
		}
	}
	return kept
}
