// Package predlog persists every prediction to a flat CSV file that stays
// readable by plain tabular tools.
package predlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/smartinvest/apiserver/types"
)

// Record is one logged prediction: the submission, the display label of
// the predicted risk, and the comma-joined top recommended symbols.
type Record struct {
	Submission        types.Submission `json:"submission"`
	PredictedRisk     string           `json:"predicted_risk"`
	RecommendedStocks string           `json:"recommended_stocks"`
}

// Log appends prediction records to a CSV file. Writes are append-only
// and serialized by a single mutex, so concurrent submissions cannot drop
// rows. The header is written once when the file is created. Rows are
// never mutated or deleted.
type Log struct {
	mu   sync.Mutex
	path string
}

// NewLog constructs a Log writing to path. The file is created lazily on
// the first append; a missing file reads as "no records yet".
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Header returns the CSV header columns.
func Header() []string {
	header := make([]string, 0, len(types.SubmissionColumns)+2)
	header = append(header, types.SubmissionColumns...)
	header = append(header, "Predicted Risk", "Recommended Stocks")
	return header
}

// Append adds one record to the log.
func (l *Log) Append(record Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open prediction log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat prediction log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header()); err != nil {
			return fmt.Errorf("write prediction log header: %w", err)
		}
	}
	if err := w.Write(recordRow(record)); err != nil {
		return fmt.Errorf("write prediction log row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush prediction log: %w", err)
	}
	return nil
}

// ReadAll returns every logged record. A missing log file is not an
// error: there are simply no records yet.
func (l *Log) ReadAll() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open prediction log: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read prediction log: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func recordRow(record Record) []string {
	s := record.Submission
	return []string{
		s.Username,
		formatNumber(s.Age),
		s.Gender,
		s.EducationLevel,
		s.MaritalStatus,
		formatNumber(s.Income),
		formatNumber(s.CreditScore),
		formatNumber(s.LoanAmount),
		s.LoanPurpose,
		s.EmploymentStatus,
		formatNumber(s.YearsAtCurrentJob),
		s.PaymentHistory,
		formatNumber(s.DebtToIncomeRatio),
		formatNumber(s.AssetsValue),
		formatNumber(s.NumberOfDependents),
		formatNumber(s.PreviousDefaults),
		formatNumber(s.MaritalStatusChange),
		record.PredictedRisk,
		record.RecommendedStocks,
	}
}

func parseRow(row []string) (Record, error) {
	want := len(types.SubmissionColumns) + 2
	if len(row) != want {
		return Record{}, fmt.Errorf("prediction log row has %d columns, want %d", len(row), want)
	}

	var record Record
	s := &record.Submission
	s.Username = row[0]
	s.Age = parseNumber(row[1])
	s.Gender = row[2]
	s.EducationLevel = row[3]
	s.MaritalStatus = row[4]
	s.Income = parseNumber(row[5])
	s.CreditScore = parseNumber(row[6])
	s.LoanAmount = parseNumber(row[7])
	s.LoanPurpose = row[8]
	s.EmploymentStatus = row[9]
	s.YearsAtCurrentJob = parseNumber(row[10])
	s.PaymentHistory = row[11]
	s.DebtToIncomeRatio = parseNumber(row[12])
	s.AssetsValue = parseNumber(row[13])
	s.NumberOfDependents = parseNumber(row[14])
	s.PreviousDefaults = parseNumber(row[15])
	s.MaritalStatusChange = parseNumber(row[16])
	record.PredictedRisk = row[17]
	record.RecommendedStocks = row[18]
	return record, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
