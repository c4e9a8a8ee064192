package series

import (
	"testing"

	"goplots/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		field string
		value float64
		keep  bool
	}{
		{"1", 1, true},
		{"  2.5 ", 2.5, true},
		{"-3e2", -300, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"inf", 0, false},
		{"-Infinity", 0, false},
		{"NaN", 0, false},
		{"1e400", 0, false},
		{"12px", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			v, ok := Classify(tt.field)
			assert.Equal(t, tt.keep, ok)
			if tt.keep {
				assert.Equal(t, tt.value, v)
			}
		})
	}
}

func TestExtractCSVRowMajor(t *testing.T) {
	nums, err := ExtractCSV("a,b,c\n1,2,3\n4, x ,5\n\n6\n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, nums)
}

func TestExtractCSVSkipsNonFinite(t *testing.T) {
	nums, err := ExtractCSV("inf,1,nan\r\n-inf,2\r\n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, nums)
}

func TestExtractCSVQuotedFields(t *testing.T) {
	nums, err := ExtractCSV("\"1.5\",\" 2 \",\"three\"\n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2}, nums)
}

func TestExtractCSVNoNumbers(t *testing.T) {
	tests := []string{
		"a,b\nx,y\n",
		"",
		"\n\n",
		",,,",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			nums, err := ExtractCSV(input)
			require.Error(t, err)
			assert.Nil(t, nums)
			assert.Equal(t, errors.CodeNoNumericData, errors.GetCode(err))
		})
	}
}

func TestExtractRecords(t *testing.T) {
	nums, err := ExtractRecords([][]string{{"x", "1"}, {}, {"2", "", "3.25"}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3.25}, nums)

	_, err = ExtractRecords(nil)
	assert.Equal(t, errors.CodeNoNumericData, errors.GetCode(err))
}
