package launches

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"launchdash/internal/logging"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersion,
}

// Every column is read as a string so that parse failures surface as
// MalformedRecordError instead of silently becoming NaN.
func frameOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	}
}

// LoadDataset reads a .csv or .xlsx launch table and builds the Dataset.
// Files with any other extension are parsed as CSV.
func LoadDataset(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &StartupError{Path: path, Err: err}
	}

	var (
		df  dataframe.DataFrame
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		df, err = readWorkbookFrame(path)
	default:
		df, err = readCSVFrame(path)
	}
	if err != nil {
		return nil, &StartupError{Path: path, Err: err}
	}

	ds, err := datasetFromFrame(df)
	if err != nil {
		var malformed *MalformedRecordError
		if errors.As(err, &malformed) {
			return nil, err
		}
		return nil, &StartupError{Path: path, Err: err}
	}
	return ds, nil
}

func readCSVFrame(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer logging.SafeCloseWithLogging(file, slog.Default(), "launch_csv")

	df := dataframe.ReadCSV(file, frameOptions()...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error parsing CSV file: %w", df.Err)
	}
	return df, nil
}

// readWorkbookFrame loads the first sheet of an Excel workbook.
func readWorkbookFrame(path string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error opening workbook: %w", err)
	}
	defer logging.SafeCloseWithLogging(f, slog.Default(), "launch_workbook")

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataframe.DataFrame{}, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	// GetRows drops trailing empty cells; the frame needs rectangular input.
	width := len(rows[0])
	for i := range rows {
		for len(rows[i]) < width {
			rows[i] = append(rows[i], "")
		}
		rows[i] = rows[i][:width]
	}

	df := dataframe.LoadRecords(rows, frameOptions()...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error parsing sheet %q: %w", sheets[0], df.Err)
	}
	return df, nil
}

func datasetFromFrame(df dataframe.DataFrame) (*Dataset, error) {
	// Header cells are matched after trimming; lookups use the raw name.
	headers := make(map[string]string)
	for _, name := range df.Names() {
		headers[strings.TrimSpace(name)] = name
	}

	columns := make(map[string][]string, len(requiredColumns))
	for _, column := range requiredColumns {
		raw, ok := headers[column]
		if !ok {
			return nil, fmt.Errorf("missing required column %q", column)
		}
		values, err := columnRecords(df, raw)
		if err != nil {
			return nil, err
		}
		columns[column] = values
	}

	if df.Nrow() == 0 {
		return nil, ErrEmptyDataset
	}

	sites := columns[ColumnLaunchSite]
	payloads := columns[ColumnPayloadMass]
	classes := columns[ColumnClass]
	boosters := columns[ColumnBoosterVersion]

	records := make([]LaunchRecord, df.Nrow())
	for i := range records {
		row := i + 1

		payload, err := parseNumber(payloads[i])
		if err != nil {
			return nil, &MalformedRecordError{Row: row, Column: ColumnPayloadMass, Value: payloads[i], Reason: err.Error()}
		}

		class, err := parseNumber(classes[i])
		if err != nil {
			return nil, &MalformedRecordError{Row: row, Column: ColumnClass, Value: classes[i], Reason: err.Error()}
		}
		if class != 0 && class != 1 {
			return nil, &MalformedRecordError{Row: row, Column: ColumnClass, Value: classes[i], Reason: "class must be 0 or 1"}
		}

		records[i] = LaunchRecord{
			LaunchSite:     strings.TrimSpace(sites[i]),
			PayloadMassKg:  payload,
			Class:          int(class),
			BoosterVersion: boosters[i],
		}
	}

	return NewDataset(records)
}

func columnRecords(df dataframe.DataFrame, name string) ([]string, error) {
	col := df.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("reading column %q: %w", name, col.Err)
	}
	return col.Records(), nil
}

func parseNumber(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.New("missing or non-finite value")
	}
	return value, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
