package wards

import (
	"bytes"
	"fmt"
	"hospital-service/internal/app/models"
	"time"

	"github.com/xuri/excelize/v2"
)

const censusSheetName = "Ward Census"

var censusHeader = []string{
	"Ward Number",
	"Ward Type",
	"Floor",
	"Specialization",
	"Status",
	"Total Beds",
	"Occupied Beds",
	"Available Beds",
	"Occupancy %",
}

var censusColumnWidths = []float64{14, 14, 8, 16, 14, 12, 14, 15, 13}

// BuildCensusWorkbook renders one row per ward followed by a totals row.
func BuildCensusWorkbook(wards []models.Ward, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", censusSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetCellValue(censusSheetName, "A1", "Generated at "+generatedAt.UTC().Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("failed to set title cell: %w", err)
	}

	const headerRow = 2
	for col, header := range censusHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(censusSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(censusSheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}

		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(censusSheetName, colName, colName, censusColumnWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	var totalBeds, occupiedBeds int
	row := headerRow + 1
	for i := range wards {
		ward := &wards[i]
		totalBeds += ward.TotalBeds
		occupiedBeds += ward.OccupiedBeds

		values := []any{
			ward.WardNumber,
			string(ward.WardType),
			ward.Floor,
			string(ward.Specialization),
			string(ward.Status),
			ward.TotalBeds,
			ward.OccupiedBeds,
			ward.AvailableBeds(),
			occupancyPercent(ward.OccupiedBeds, ward.TotalBeds),
		}
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		row++
	}

	totals := []any{
		"TOTAL", "", "", "", "",
		totalBeds,
		occupiedBeds,
		totalBeds - occupiedBeds,
		occupancyPercent(occupiedBeds, totalBeds),
	}
	if err := setRow(f, row, totals); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(censusSheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d: %w", row, err)
	}
	return nil
}

func occupancyPercent(occupied, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(occupied*10000/total) / 100
}
