package models

import (
	"encoding/json"
	"testing"

	"goplots/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionHistogram_Validate(t *testing.T) {
	tests := []struct {
		name        string
		counts      int
		edges       int
		expectError bool
	}{
		{"edges one longer", 3, 4, false},
		{"empty histogram with single edge", 0, 1, false},
		{"edges equal counts", 3, 3, true},
		{"edges two longer", 3, 5, true},
		{"no edges", 3, 0, true},
		{"nothing at all", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistributionHistogram{Counts: make([]int, tt.counts), Edges: make([]float64, tt.edges)}
			err := d.Validate()

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, errors.CodeShapeMismatch, errors.GetCode(err))
				assert.Equal(t, "edges must be length counts+1", err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEmpiricalCDF_Validate(t *testing.T) {
	assert.NoError(t, (&EmpiricalCDF{Xs: []float64{1, 2}, Ps: []float64{0.5, 1}}).Validate())
	assert.NoError(t, (&EmpiricalCDF{Xs: []float64{}, Ps: []float64{}}).Validate())

	err := (&EmpiricalCDF{Xs: []float64{1, 2}, Ps: []float64{0.5}}).Validate()
	require.Error(t, err)
	assert.Equal(t, "xs and ps must be same length", err.Error())
}

func TestQQData_Validate(t *testing.T) {
	tests := []struct {
		name        string
		sample      []float64
		theoretical []float64
		expectError bool
	}{
		{"matching", []float64{0, 1}, []float64{-1, 1}, false},
		{"mismatch", []float64{0, 1}, []float64{-0.5}, true},
		{"both empty", []float64{}, []float64{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&QQData{SampleQuantiles: tt.sample, TheoreticalQuantiles: tt.theoretical}).Validate()
			if tt.expectError {
				assert.Equal(t, errors.CodeShapeMismatch, errors.GetCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCorrelationMatrix_Validate(t *testing.T) {
	three := 3
	zero := 0
	huge := 1 << 32

	tests := []struct {
		name        string
		cm          CorrelationMatrix
		expectError string
	}{
		{"3x3", CorrelationMatrix{Size: &three, Matrix: make([]float64, 9)}, ""},
		{"3x3 with names", CorrelationMatrix{Size: &three, Names: []string{"a", "b", "c"}, Matrix: make([]float64, 9)}, ""},
		{"empty names treated as absent", CorrelationMatrix{Size: &three, Names: []string{}, Matrix: make([]float64, 9)}, ""},
		{"size zero", CorrelationMatrix{Size: &zero, Matrix: []float64{}}, ""},
		{"size 3 with 4 entries", CorrelationMatrix{Size: &three, Matrix: make([]float64, 4)}, "matrix length must be size*size"},
		{"size whose square wraps int", CorrelationMatrix{Size: &huge, Matrix: []float64{}}, "matrix length must be size*size"},
		{"size zero with entries", CorrelationMatrix{Size: &zero, Matrix: []float64{1}}, "matrix length must be size*size"},
		{"wrong names length", CorrelationMatrix{Size: &three, Names: []string{"a"}, Matrix: make([]float64, 9)}, "names length must equal size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cm.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectError, err.Error())
			assert.Equal(t, errors.CodeShapeMismatch, errors.GetCode(err))
		})
	}
}

func TestCorrelationMatrix_Labels(t *testing.T) {
	two := 2
	assert.Equal(t, []string{"1", "2"}, (&CorrelationMatrix{Size: &two}).Labels())
	assert.Equal(t, []string{"x", "y"}, (&CorrelationMatrix{Size: &two, Names: []string{"x", "y"}}).Labels())
}

func TestSeriesWithOutliers_Sanitize(t *testing.T) {
	s := SeriesWithOutliers{
		Values: []float64{1, 2, 100, 3, 4, -50, 5},
		Outliers: &Outliers{
			Indices: []int{2, 5, 99, -1, 7, 0},
			Values:  []float64{100, -50, 999, 0, 0, 1},
		},
	}

	assert.NoError(t, s.Validate())
	assert.Equal(t, []int{2, 5, 0}, s.Sanitize())
	assert.Equal(t, []int{2, 5, 99, -1, 7, 0}, s.Outliers.Indices, "input must not be mutated")

	assert.Nil(t, (&SeriesWithOutliers{Values: []float64{1}}).Sanitize())
}

func TestQuantileJSON(t *testing.T) {
	var qs []Quantile
	require.NoError(t, json.Unmarshal([]byte(`[[0.05, 0.2], [0.5, 1.5]]`), &qs))
	assert.Equal(t, []Quantile{{P: 0.05, Value: 0.2}, {P: 0.5, Value: 1.5}}, qs)

	out, err := json.Marshal(qs[0])
	require.NoError(t, err)
	assert.JSONEq(t, `[0.05, 0.2]`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`[[0.05]]`), &qs))
	assert.Error(t, json.Unmarshal([]byte(`[[0.05, 1, 2]]`), &qs))
	assert.Error(t, json.Unmarshal([]byte(`[{"p": 0.05}]`), &qs))
}

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		payload  Payload
		wantCode string
	}{
		{"valid histogram", `{"counts":[1,3,2],"edges":[0,1,2,3],"quantiles":[[0.5,1.5]]}`, &DistributionHistogram{}, ""},
		{"histogram mismatch", `{"counts":[1,3,2],"edges":[0,1,2],"quantiles":[]}`, &DistributionHistogram{}, errors.CodeShapeMismatch},
		{"histogram missing quantiles", `{"counts":[1],"edges":[0,1]}`, &DistributionHistogram{}, errors.CodeValidationError},
		{"negative count", `{"counts":[-1],"edges":[0,1],"quantiles":[]}`, &DistributionHistogram{}, errors.CodeValidationError},
		{"summary count only", `{"count":0}`, &SummaryStats{}, ""},
		{"summary missing count", `{"mean":1}`, &SummaryStats{}, errors.CodeValidationError},
		{"qq missing mu_hat", `{"sample_quantiles":[1],"theoretical_quantiles":[1],"sigma_hat":1}`, &QQData{}, errors.CodeValidationError},
		{"qq zero estimates are present", `{"sample_quantiles":[1],"theoretical_quantiles":[1],"mu_hat":0,"sigma_hat":0}`, &QQData{}, ""},
		{"heatmap size overflowing size*size", `{"size":4294967296,"matrix":[]}`, &CorrelationMatrix{}, errors.CodeShapeMismatch},
		{"heatmap negative size", `{"size":-2,"matrix":[1,0,0,1]}`, &CorrelationMatrix{}, errors.CodeValidationError},
		{"series with bad outliers", `{"values":[1,2],"outliers":{"indices":[5],"values":[9]}}`, &SeriesWithOutliers{}, ""},
		{"not json", `counts=1`, &EmpiricalCDF{}, errors.CodeDecodeError},
		{"empty body", ``, &EmpiricalCDF{}, errors.CodeDecodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecodePayload([]byte(tt.body), tt.payload)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestDecodeValues(t *testing.T) {
	values, err := DecodeValues([]byte(`[1, 2.5, -3]`))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, values)

	for _, body := range []string{`[]`, `{}`, `null`, `"1,2"`, `[1, "a"]`, ``} {
		_, err := DecodeValues([]byte(body))
		require.Error(t, err, body)
		assert.Equal(t, errors.CodeEmptyInput, errors.GetCode(err))
		assert.Equal(t, "expected non-empty array of numbers", err.Error())
	}
}
