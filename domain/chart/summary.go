package chart

import (
	"fmt"

	"goplots/models"
)

const (
	summaryWidth  = 480
	summaryHeight = 300
)

// Summary renders the summary statistics as a text panel without axes.
func Summary(s *models.SummaryStats, title string) Figure {
	count := 0
	if s.Count != nil {
		count = *s.Count
	}
	lines := []string{
		fmt.Sprintf("n = %d", count),
		"mean = " + optional(s.Mean),
		"median = " + optional(s.Median),
		"sd = " + optional(s.Std),
		fmt.Sprintf("min/max = %s / %s", optional(s.Min), optional(s.Max)),
		fmt.Sprintf("IQR = %s   MAD = %s", optional(s.IQR), optional(s.MAD)),
	}
	return &textFigure{meta: Meta{
		Kind:   KindSummary,
		Width:  summaryWidth,
		Height: summaryHeight,
		Title:  []string{titleOr(title, "Summary")},
		Lines:  lines,
	}}
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
