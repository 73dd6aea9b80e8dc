package loader

import (
	"math"
	"net/http"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"covid-analyzer/models"
	"covid-analyzer/utils"
)

// requiredColumns are the dataset columns the pipeline depends on. The
// source CSV may carry dozens more; anything beyond these is ignored.
var requiredColumns = []string{
	"location", "iso_code", "date", "new_cases", "total_cases", "new_deaths",
}

// Loader downloads the dataset CSV and decodes it into raw records.
// It makes exactly one fetch attempt per Load call and keeps no cache,
// so repeated calls simply re-download.
type Loader struct {
	url    string
	client *http.Client
	logger *utils.Logger
}

// New creates a Loader for the given dataset URL.
func New(url string, timeout time.Duration, logger *utils.Logger) *Loader {
	return &Loader{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Load fetches the dataset and returns one RawRecord per CSV row.
// Network and HTTP-status problems surface as *FetchError, schema and
// decode problems as *ParseError.
func (l *Loader) Load() ([]*models.RawRecord, error) {
	l.logger.Info("[loader] Downloading dataset from %s", l.url)

	resp, err := l.client.Get(l.url)
	if err != nil {
		return nil, &FetchError{URL: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: l.url, Status: resp.StatusCode}
	}

	df := dataframe.ReadCSV(resp.Body,
		dataframe.WithTypes(map[string]series.Type{
			"location":    series.String,
			"iso_code":    series.String,
			"date":        series.String,
			"new_cases":   series.Float,
			"total_cases": series.Float,
			"new_deaths":  series.Float,
		}),
	)
	if df.Err != nil {
		return nil, &ParseError{URL: l.url, Err: df.Err}
	}

	if missing := missingColumns(df.Names()); len(missing) > 0 {
		return nil, &ParseError{URL: l.url, Missing: missing}
	}

	var (
		location   = df.Col("location")
		isoCode    = df.Col("iso_code")
		date       = df.Col("date")
		newCases   = df.Col("new_cases")
		totalCases = df.Col("total_cases")
		newDeaths  = df.Col("new_deaths")
	)

	n := df.Nrow()
	records := make([]*models.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, &models.RawRecord{
			Location:   location.Elem(i).String(),
			ISOCode:    isoCode.Elem(i).String(),
			Date:       date.Elem(i).String(),
			NewCases:   floatOrNil(newCases.Elem(i)),
			TotalCases: floatOrNil(totalCases.Elem(i)),
			NewDeaths:  floatOrNil(newDeaths.Elem(i)),
		})
	}

	l.logger.Info("[loader] Dataset loaded: %d rows, %d columns", n, df.Ncol())
	return records, nil
}

// floatOrNil converts a dataframe element to an optional float, keeping
// the absent-vs-zero distinction the statistics depend on.
func floatOrNil(e series.Element) *float64 {
	if e.IsNA() {
		return nil
	}
	v := e.Float()
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func missingColumns(names []string) []string {
	present := make(map[string]struct{}, len(names))
	for _, n := range names {
		present[n] = struct{}{}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
