// Package series turns free-form delimited text into numeric sequences.
//
// Extraction is permissive: every field is classified as keep or discard on
// its own, and only an empty overall result is an error.
package series

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"goplots/internal/errors"
)

// Classify reports the finite number held by a single field, if any.
func Classify(field string) (float64, bool) {
	s := strings.TrimSpace(field)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ExtractRecords flattens records row by row, field by field, keeping only
// fields that Classify accepts.
func ExtractRecords(records [][]string) ([]float64, error) {
	var nums []float64
	for _, row := range records {
		for _, field := range row {
			if v, ok := Classify(field); ok {
				nums = append(nums, v)
			}
		}
	}
	if len(nums) == 0 {
		return nil, errors.NoNumericData()
	}
	return nums, nil
}

// ExtractCSV parses CSV text and extracts its numbers in row-major order.
// Records the CSV reader cannot parse are skipped like unparsable fields.
func ExtractCSV(text string) ([]float64, error) {
	return ExtractRecords(readRecords(strings.NewReader(text)))
}

func readRecords(r io.Reader) [][]string {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			break
		}
		records = append(records, record)
	}
	return records
}
