package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"covid-analyzer/models"
	"covid-analyzer/utils"
)

// Chart file names, one per purpose.
const (
	GlobalTrendFile  = "global_new_cases.png"
	TopCountriesFile = "top_10_countries_total_cases.png"
	MonthlyTrendFile = "monthly_trend.png"
)

// Renderer draws the three report charts into an output directory.
type Renderer struct {
	outputDir string
	logger    *utils.Logger
}

// NewRenderer creates a Renderer writing PNGs under outputDir.
func NewRenderer(outputDir string, logger *utils.Logger) *Renderer {
	return &Renderer{outputDir: outputDir, logger: logger}
}

// RenderAll produces the global daily trend, the top-10 countries bar
// chart, and the monthly average trend. The output directory is created
// if it does not exist.
func (r *Renderer) RenderAll(records []*models.Record) error {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("charts: create output dir: %w", err)
	}

	if err := r.renderGlobalTrend(records); err != nil {
		return err
	}
	if err := r.renderTopCountries(records); err != nil {
		return err
	}
	if err := r.renderMonthlyTrend(records); err != nil {
		return err
	}

	r.logger.Info("[charts] All charts saved to %s", r.outputDir)
	return nil
}

// renderGlobalTrend plots the worldwide sum of new cases per day.
func (r *Renderer) renderGlobalTrend(records []*models.Record) error {
	byDate := make(map[time.Time]float64)
	for _, rec := range records {
		if rec.NewCases != nil {
			byDate[rec.Date] += *rec.NewCases
		}
	}

	dates, values := sortedSeries(byDate)
	graph := chart.Chart{
		Title:  "Global Daily COVID-19 New Cases",
		Width:  1280,
		Height: 640,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{Name: "New Cases"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "New cases",
				XValues: dates,
				YValues: values,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.0,
				},
			},
		},
	}

	return r.save(graph.Render, GlobalTrendFile)
}

// renderTopCountries plots the ten countries with the highest recorded
// total case count (the max of total_cases per location).
func (r *Renderer) renderTopCountries(records []*models.Record) error {
	totals := make(map[string]float64)
	for _, rec := range records {
		if rec.TotalCases != nil && *rec.TotalCases > totals[rec.Location] {
			totals[rec.Location] = *rec.TotalCases
		}
	}

	type countryTotal struct {
		location string
		total    float64
	}
	ranked := make([]countryTotal, 0, len(totals))
	for loc, total := range totals {
		ranked = append(ranked, countryTotal{loc, total})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].total > ranked[j].total })
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	if len(ranked) == 0 {
		r.logger.Warn("[charts] No total_cases data — skipping %s", TopCountriesFile)
		return nil
	}

	bars := make([]chart.Value, 0, len(ranked))
	for _, ct := range ranked {
		bars = append(bars, chart.Value{Label: ct.location, Value: ct.total})
	}

	graph := chart.BarChart{
		Title:    "Top 10 Countries by Total COVID-19 Cases",
		Width:    1280,
		Height:   720,
		BarWidth: 60,
		XAxis:    chart.Style{TextRotationDegrees: 45.0},
		Bars:     bars,
	}

	return r.save(graph.Render, TopCountriesFile)
}

// renderMonthlyTrend plots the average daily new cases per calendar month.
func (r *Renderer) renderMonthlyTrend(records []*models.Record) error {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, rec := range records {
		if rec.NewCases == nil {
			continue
		}
		month := time.Date(rec.Date.Year(), rec.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[month] += *rec.NewCases
		counts[month]++
	}

	averages := make(map[time.Time]float64, len(sums))
	for month, sum := range sums {
		averages[month] = sum / float64(counts[month])
	}

	months, values := sortedSeries(averages)
	graph := chart.Chart{
		Title:  "Average Daily Cases by Month",
		Width:  1280,
		Height: 640,
		XAxis: chart.XAxis{
			Name:           "Month",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{Name: "Average Daily Cases"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Monthly average",
				XValues: months,
				YValues: values,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2.0,
				},
			},
		},
	}

	return r.save(graph.Render, MonthlyTrendFile)
}

// save renders a chart to its PNG file under the output directory.
func (r *Renderer) save(render func(chart.RendererProvider, io.Writer) error, name string) error {
	path := filepath.Join(r.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("charts: create %s: %w", path, err)
	}
	defer f.Close()

	if err := render(chart.PNG, f); err != nil {
		return fmt.Errorf("charts: render %s: %w", name, err)
	}

	r.logger.Info("[charts] Wrote %s", path)
	return nil
}

// sortedSeries flattens a date-keyed map into parallel slices sorted by
// date. A single data point is padded to two — go-chart refuses to draw
// a one-point time series.
func sortedSeries(byDate map[time.Time]float64) ([]time.Time, []float64) {
	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	values := make([]float64, 0, len(dates))
	for _, d := range dates {
		values = append(values, byDate[d])
	}

	if len(dates) == 1 {
		dates = append(dates, dates[0].AddDate(0, 0, 1))
		values = append(values, values[0])
	}
	return dates, values
}
