package recipients

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Zero-based column positions within a row.
const (
	ColumnEmail     = 1 // B
	ColumnFirstName = 2 // C
	ColumnLastName  = 3 // D
)

// Read opens the workbook at path and returns the recipients of its first sheet.
func Read(path string) ([]Recipient, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, path, err)
	}
	defer func() { _ = f.Close() }()

	return fromWorkbook(f)
}

// Parse reads a workbook from r and returns the recipients of its first sheet.
func Parse(r io.Reader) ([]Recipient, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	defer func() { _ = f.Close() }()

	return fromWorkbook(f)
}

// Reader is a recipient source bound to a fixed spreadsheet path.
type Reader struct {
	path string
}

// NewReader creates a Reader for the workbook at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the workbook path the reader was created with.
func (r *Reader) Path() string {
	return r.path
}

// Read loads the recipient list. The file is reopened on every call.
func (r *Reader) Read() ([]Recipient, error) {
	return Read(r.path)
}

func fromWorkbook(f *excelize.File) ([]Recipient, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrFileRead)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrFileRead, sheets[0], err)
	}

	return fromRows(rows), nil
}

// fromRows maps raw rows to recipients. Index 0 is the header.
func fromRows(rows [][]string) []Recipient {
	list := make([]Recipient, 0, len(rows))
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		list = append(list, Recipient{
			Email:     cell(row, ColumnEmail),
			FirstName: cell(row, ColumnFirstName),
			LastName:  cell(row, ColumnLastName),
		})
	}
	return list
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
