package dataprocessing

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	apperrors "sooscli/internal/errors"
)

// readWorkbookRows reads the data rows of the first sheet of an Excel workbook,
// skipping the header row. Inventories exported from spreadsheet tools carry the
// same [id, name, price, quantity] layout as the delimited sources, one cell per
// column.
func readWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(path, err)
		}
		return nil, apperrors.NewParsingError("open workbook "+path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("workbook %s has no sheets", path), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("read workbook "+path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}
