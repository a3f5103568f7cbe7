package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder/types"
)

var requiredColumns = []string{"phone", "first_name", "other_name", "birthday"}

// Error reports a missing, unreadable, or malformed sheet. It is fatal
// to the run.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("spreadsheet %s: %s", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// LoadContacts reads the first sheet of the workbook at path. The header
// row must contain the phone, first_name, other_name and birthday
// columns, in any order; extra columns are ignored. Row order is
// preserved and phone numbers come back normalized.
func LoadContacts(path string) ([]types.Contact, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &Error{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &Error{Path: path, Err: fmt.Errorf("sheet %q has no header row", sheet)}
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	var contacts []types.Contact
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		birthday, err := parseDate(cell(row, columns["birthday"]))
		if err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("row %d: birthday: %s", i+2, err)}
		}

		contacts = append(contacts, types.Contact{
			Phone:     NormalizePhone(cell(row, columns["phone"])),
			FirstName: cell(row, columns["first_name"]),
			OtherName: cell(row, columns["other_name"]),
			Birthday:  birthday,
		})
	}

	return contacts, nil
}

// NormalizePhone prepends '+' when it is missing. Applying it twice
// yields the same string.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}

func mapColumns(header []string) (map[string]int, error) {
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	return columns, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"01/02/2006",
	"2/1/2006",
}

// parseDate handles both raw Excel date serials and plain date strings,
// since date-typed cells come back as serial numbers when the workbook
// is read with raw values.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty cell")
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
