package assay

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
)

// WellAssignment records which strain was inoculated into one well of one
// plate, as declared by the layout workbook.
type WellAssignment struct {
	Plate  string
	Well   string
	Strain string
}

// LoadLayout reads a plate-layout .xls workbook: one sheet per plate, row
// labels (A-H) in the first column, numbered columns across, and a strain ID
// in each occupied cell. Empty cells are unused wells and are skipped.
func LoadLayout(path string) ([]WellAssignment, error) {
	spreadsheet, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]WellAssignment, 0)

	sheetCount := spreadsheet.NumSheets()
	for sheetID := 0; sheetID < sheetCount; sheetID++ {
		sheet := spreadsheet.GetSheet(sheetID)
		if sheet == nil {
			return nil, pfx.Err(fmt.Errorf("sheet %d was nil", sheetID))
		}

		// Row 0 holds the column numbers; data rows start at 1.
		for rowID := 1; rowID <= int(sheet.MaxRow); rowID++ {
			row := sheet.Row(rowID)
			if row == nil {
				continue
			}

			rowLabel := row.Col(0)
			if rowLabel == "" {
				continue
			}

			for colID := 1; colID <= row.LastCol(); colID++ {
				strain := row.Col(colID)
				if strain == "" {
					continue
				}

				out = append(out, WellAssignment{
					Plate:  sheet.Name,
					Well:   fmt.Sprintf("%s%d", rowLabel, colID),
					Strain: strain,
				})
			}
		}
	}

	return out, nil
}
