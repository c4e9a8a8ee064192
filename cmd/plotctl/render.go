package main

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"goplots/adapters/excel"
	"goplots/domain/chart"
	"goplots/domain/series"
	"goplots/domain/stats"
	"goplots/internal/errors"
	"goplots/models"
)

// renderPayload runs body through validation, rendering and encoding for kind.
func renderPayload(kind string, body []byte, title string) ([]byte, error) {
	switch kind {
	case "line", "csv", "xlsx":
		values, err := rawValues(kind, body)
		if err != nil {
			return nil, err
		}
		desc, err := stats.Describe(values)
		if err != nil {
			return nil, err
		}
		return chart.EncodePNG(chart.Line(values, desc, title))
	case "summary":
		return plot(body, new(models.SummaryStats), title, chart.Summary)
	case "distribution":
		return plot(body, new(models.DistributionHistogram), title, chart.Histogram)
	case "ecdf":
		return plot(body, new(models.EmpiricalCDF), title, chart.ECDF)
	case "qq":
		return plot(body, new(models.QQData), title, chart.QQ)
	case "corr-heatmap":
		return plot(body, new(models.CorrelationMatrix), title, chart.Heatmap)
	case "series":
		return plot(body, new(models.SeriesWithOutliers), title, chart.Series)
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown kind %q", kind))
	}
}

func rawValues(kind string, body []byte) ([]float64, error) {
	switch kind {
	case "csv":
		if !utf8.Valid(body) {
			return nil, errors.DecodeError("body must be UTF-8 encoded CSV text")
		}
		return series.ExtractCSV(string(body))
	case "xlsx":
		return excel.ExtractWorkbook(bytes.NewReader(body))
	default:
		return models.DecodeValues(body)
	}
}

func plot[P models.Payload](body []byte, payload P, title string, draw func(P, string) chart.Figure) ([]byte, error) {
	if err := models.DecodePayload(body, payload); err != nil {
		return nil, err
	}
	return chart.EncodePNG(draw(payload, title))
}
