package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"covid-analyzer/models"
	"covid-analyzer/utils"
)

// Summarizer computes descriptive statistics over the cleaned dataset.
type Summarizer struct {
	logger *utils.Logger
}

// NewSummarizer creates a Summarizer with the given logger.
func NewSummarizer(logger *utils.Logger) *Summarizer {
	return &Summarizer{logger: logger}
}

// Generate is a pure function of the cleaned records: mean, median and max
// of new_cases over present values only, the sum with absent treated as 0,
// the Pearson correlation between new_cases and new_deaths over rows where
// both are present, and the coverage (distinct locations, date span).
// Statistics with nothing to compute from come back nil, never zero.
func (s *Summarizer) Generate(records []*models.Record) *models.Summary {
	summary := &models.Summary{}
	if len(records) == 0 {
		return summary
	}

	var (
		cases     []float64
		corrX     []float64
		corrY     []float64
		locations = make(map[string]struct{})
	)

	for i, r := range records {
		if r.NewCases != nil {
			cases = append(cases, *r.NewCases)
			summary.Total += *r.NewCases
		}
		if r.NewCases != nil && r.NewDeaths != nil {
			corrX = append(corrX, *r.NewCases)
			corrY = append(corrY, *r.NewDeaths)
		}
		locations[r.Location] = struct{}{}

		if i == 0 || r.Date.Before(summary.FirstDate) {
			summary.FirstDate = r.Date
		}
		if i == 0 || r.Date.After(summary.LastDate) {
			summary.LastDate = r.Date
		}
	}

	summary.Locations = len(locations)

	if len(cases) > 0 {
		summary.Mean = models.Float64(stat.Mean(cases, nil))
		summary.Median = models.Float64(median(cases))
		summary.Max = models.Float64(max(cases))
	}

	// Pearson correlation needs at least two complete pairs; with fewer,
	// or with zero variance, the statistic stays undefined.
	if len(corrX) >= 2 {
		r := stat.Correlation(corrX, corrY, nil)
		if !math.IsNaN(r) {
			summary.Correlation = models.Float64(r)
		}
	}

	return summary
}

// Print writes the summary report to stdout in human-readable form.
func (s *Summarizer) Print(sum *models.Summary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 COVID-19 DATASET SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Coverage\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Countries  : \033[1m%d\033[0m\n", sum.Locations)
	if !sum.FirstDate.IsZero() {
		days := int(sum.LastDate.Sub(sum.FirstDate).Hours() / 24)
		fmt.Printf("  Date range : \033[1m%s → %s\033[0m (%d days)\n",
			sum.FirstDate.Format("2006-01-02"), sum.LastDate.Format("2006-01-02"), days)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Daily New Cases\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Mean   : %s\n", formatStat(sum.Mean))
	fmt.Printf("  Median : %s\n", formatStat(sum.Median))
	fmt.Printf("  Max    : %s\n", formatStat(sum.Max))
	fmt.Printf("  Total  : \033[1;32m%.0f\033[0m\n", sum.Total)
	fmt.Println()

	fmt.Printf("\033[1;33m  Correlation (new cases vs new deaths)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if sum.Correlation != nil {
		fmt.Printf("  Pearson r : \033[1;32m%.4f\033[0m\n", *sum.Correlation)
	} else {
		fmt.Printf("  Undefined — fewer than 2 complete pairs\n")
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func formatStat(v *float64) string {
	if v == nil {
		return "undefined"
	}
	return fmt.Sprintf("\033[1;32m%.2f\033[0m", *v)
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func max(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
