package excel

import (
	"fmt"
	"io"
	"time"

	"goplots/domain/series"
	"goplots/internal"
	"goplots/internal/errors"

	"github.com/xuri/excelize/v2"
)

// WorkbookReader extracts numeric data from uploaded xlsx workbooks.
type WorkbookReader struct {
	logger *internal.Logger
}

// NewWorkbookReader creates a reader logging through logger.
func NewWorkbookReader(logger *internal.Logger) *WorkbookReader {
	return &WorkbookReader{logger: logger.WithComponent("WorkbookReader")}
}

// ExtractWorkbook reads the first worksheet of r with a default reader.
func ExtractWorkbook(r io.Reader) ([]float64, error) {
	return NewWorkbookReader(internal.DefaultLogger).Extract(r)
}

// Extract reads the first worksheet row-major and keeps every cell that
// parses as a finite number.
func (w *WorkbookReader) Extract(r io.Reader) ([]float64, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.DecodeError(fmt.Sprintf("body is not a valid xlsx workbook: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NoNumericData()
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.DecodeError(fmt.Sprintf("failed to read sheet %q: %v", sheets[0], err))
	}
	w.logger.Debug("sheet %q read in %.2fms (%d rows)", sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return series.ExtractRecords(rows)
}
