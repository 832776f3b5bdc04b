package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "crm-backend/internal/errors"

	"github.com/xuri/excelize/v2"
)

// LeadSheetParser turns an uploaded spreadsheet into lead candidates.
// The first row names the columns using the lead JSON field names.
type LeadSheetParser struct{}

// NewLeadSheetParser creates a new spreadsheet parser
func NewLeadSheetParser() *LeadSheetParser {
	return &LeadSheetParser{}
}

// Parse reads the first sheet of an .xlsx file, or a .csv file, chosen by filename extension
func (p *LeadSheetParser) Parse(filename string, r io.Reader) ([]LeadInput, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = readWorkbook(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, apperrors.ErrUnsupportedFileType
	}
	if err != nil {
		return nil, apperrors.NewValidationError("file", err.Error())
	}
	return rowsToLeads(rows)
}

func readWorkbook(r io.Reader) ([][]string, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = xl.Close() }()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return xl.GetRows(sheets[0])
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func rowsToLeads(rows [][]string) ([]LeadInput, error) {
	if len(rows) < 2 {
		return nil, apperrors.ErrEmptySpreadsheet
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = normalizeColumn(h)
	}

	leads := make([]LeadInput, 0, len(rows)-1)
	for n, row := range rows[1:] {
		var lead LeadInput
		empty := true
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			known, err := lead.setColumn(header[i], cell)
			if err != nil {
				// n is zero based and the header occupies row 1
				return nil, apperrors.NewValidationError(header[i], fmt.Sprintf("row %d: %v", n+2, err))
			}
			if known {
				empty = false
			}
		}
		if !empty {
			leads = append(leads, lead)
		}
	}

	if len(leads) == 0 {
		return nil, apperrors.ErrEmptySpreadsheet
	}
	return leads, nil
}

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
	return strings.Join(strings.Fields(name), "_")
}

// setColumn assigns a spreadsheet cell to the matching field and reports whether the
// column was recognised. Unknown columns are ignored.
func (l *LeadInput) setColumn(column, value string) (bool, error) {
	v := value
	switch column {
	case "first_name":
		l.FirstName = &v
	case "last_name":
		l.LastName = &v
	case "email":
		l.Email = &v
	case "phone":
		l.Phone = &v
	case "alt_phone":
		l.AltPhone = &v
	case "address_line", "address":
		l.AddressLine = &v
	case "city":
		l.City = &v
	case "state":
		l.State = &v
	case "country":
		l.Country = &v
	case "zip", "zip_code":
		l.Zip = &v
	case "current_status", "status":
		l.CurrentStatus = &v
	case "rating":
		rating, err := strconv.Atoi(value)
		if err != nil {
			return false, fmt.Errorf("rating must be a whole number")
		}
		l.Rating = &rating
	default:
		return false, nil
	}
	return true, nil
}
