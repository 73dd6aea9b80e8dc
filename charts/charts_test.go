package charts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"covid-analyzer/models"
	"covid-analyzer/utils"
)

func chartRecord(loc string, date string, newCases, totalCases float64) *models.Record {
	d, _ := time.Parse("2006-01-02", date)
	return &models.Record{
		Location:   loc,
		ISOCode:    "XXX",
		Date:       d,
		NewCases:   models.Float64(newCases),
		TotalCases: models.Float64(totalCases),
	}
}

func sampleRecords() []*models.Record {
	return []*models.Record{
		chartRecord("Germany", "2021-01-01", 100, 100),
		chartRecord("Germany", "2021-01-15", 150, 250),
		chartRecord("Germany", "2021-02-01", 80, 330),
		chartRecord("France", "2021-01-01", 60, 60),
		chartRecord("France", "2021-01-15", 90, 150),
		chartRecord("France", "2021-02-01", 140, 290),
	}
}

func TestRendererWritesAllCharts(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, utils.NewLogger())

	if err := r.RenderAll(sampleRecords()); err != nil {
		t.Fatalf("RenderAll returned error: %v", err)
	}

	for _, name := range []string{GlobalTrendFile, TopCountriesFile, MonthlyTrendFile} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing chart %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", name)
		}
	}
}

func TestRendererCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	r := NewRenderer(dir, utils.NewLogger())

	if err := r.RenderAll(sampleRecords()); err != nil {
		t.Fatalf("RenderAll returned error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir was not created: %v", err)
	}
}

func TestRendererSkipsBarChartWithoutTotals(t *testing.T) {
	records := []*models.Record{
		{Location: "Germany", ISOCode: "DEU", Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), NewCases: models.Float64(10)},
		{Location: "Germany", ISOCode: "DEU", Date: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), NewCases: models.Float64(20)},
	}

	dir := t.TempDir()
	r := NewRenderer(dir, utils.NewLogger())
	if err := r.RenderAll(records); err != nil {
		t.Fatalf("RenderAll returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, TopCountriesFile)); !os.IsNotExist(err) {
		t.Error("bar chart should be skipped when no total_cases data exists")
	}
	if _, err := os.Stat(filepath.Join(dir, GlobalTrendFile)); err != nil {
		t.Errorf("global trend should still render: %v", err)
	}
}
