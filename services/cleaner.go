package services

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"covid-analyzer/models"
	"covid-analyzer/utils"
)

// ErrEmptyTable signals that no rows survived cleaning. Unlike per-row
// problems, which are only counted, this aborts the whole run.
var ErrEmptyTable = errors.New("cleaner: no rows survived cleaning")

// dateLayout is the dataset's calendar date format.
const dateLayout = "2006-01-02"

// isoCountryRegexp matches a genuine ISO 3166-1 alpha-3 country code.
// OWID marks its aggregate rows with codes like "OWID_WRL".
var isoCountryRegexp = regexp.MustCompile(`^[A-Z]{3}$`)

// aggregateLocations lists the dataset's non-country rows by name:
// the global total, continents, and World Bank income groups.
var aggregateLocations = map[string]struct{}{
	"World":               {},
	"Africa":              {},
	"Asia":                {},
	"Europe":              {},
	"European Union":      {},
	"North America":       {},
	"South America":       {},
	"Oceania":             {},
	"International":       {},
	"High income":         {},
	"Upper middle income": {},
	"Lower middle income": {},
	"Low income":          {},
}

// Cleaner transforms raw dataset rows into clean, validated Records.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean applies the validation rules in order — aggregate filter, date
// parsing, non-negativity — counting dropped rows per rule, then sorts
// the survivors by (location, date). Per-row problems never abort the
// run; an empty result does, with ErrEmptyTable.
func (c *Cleaner) Clean(raw []*models.RawRecord) ([]*models.Record, *models.CleanReport, error) {
	report := &models.CleanReport{Input: len(raw)}
	result := make([]*models.Record, 0, len(raw))

	for _, r := range raw {
		if isAggregate(r) {
			report.DroppedAggregate++
			continue
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(r.Date))
		if err != nil {
			report.DroppedBadDate++
			continue
		}

		if isNegative(r.NewCases) || isNegative(r.TotalCases) || isNegative(r.NewDeaths) {
			report.DroppedNegative++
			continue
		}

		result = append(result, &models.Record{
			Location:   strings.TrimSpace(r.Location),
			ISOCode:    strings.TrimSpace(r.ISOCode),
			Date:       date,
			NewCases:   r.NewCases,
			TotalCases: r.TotalCases,
			NewDeaths:  r.NewDeaths,
		})
	}

	// Stable sort keeps the original input order for equal (location, date)
	// keys, so downstream aggregation is deterministic.
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Location != result[j].Location {
			return result[i].Location < result[j].Location
		}
		return result[i].Date.Before(result[j].Date)
	})

	report.Kept = len(result)
	c.logger.Info("[cleaner] Cleaned %d → %d rows (aggregate: %d, bad date: %d, negative: %d)",
		report.Input, report.Kept,
		report.DroppedAggregate, report.DroppedBadDate, report.DroppedNegative)

	if len(result) == 0 {
		return nil, report, ErrEmptyTable
	}
	return result, report, nil
}

// isAggregate reports whether a row represents a continent, income group,
// or global total rather than a single country.
func isAggregate(r *models.RawRecord) bool {
	iso := strings.TrimSpace(r.ISOCode)
	if !isoCountryRegexp.MatchString(iso) {
		return true
	}
	_, excluded := aggregateLocations[strings.TrimSpace(r.Location)]
	return excluded
}

// isNegative reports whether a numeric field is present and below zero.
// Absent values are valid; negative ones invalidate the whole row.
func isNegative(v *float64) bool {
	return v != nil && *v < 0
}
