package wards

import (
	"bytes"
	"hospital-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildCensusWorkbook(t *testing.T) {
	wards := []models.Ward{
		{WardNumber: "A-101", WardType: models.WardTypeGeneral, Floor: 1, TotalBeds: 10, OccupiedBeds: 4, Specialization: models.WardSpecializationGeneral, Status: models.WardStatusActive},
		{WardNumber: "B-201", WardType: models.WardTypeICU, Floor: 2, TotalBeds: 4, OccupiedBeds: 4, Specialization: models.WardSpecializationCardiac, Status: models.WardStatusActive},
	}

	content, err := BuildCensusWorkbook(wards, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(censusSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, censusHeader, rows[1])
	assert.Equal(t, "A-101", rows[2][0])
	assert.Equal(t, "6", rows[2][7])
	assert.Equal(t, "40", rows[2][8])
	assert.Equal(t, "B-201", rows[3][0])
	assert.Equal(t, "0", rows[3][7])
	assert.Equal(t, "TOTAL", rows[4][0])
	assert.Equal(t, "14", rows[4][5])
	assert.Equal(t, "8", rows[4][6])
}

func TestOccupancyPercent(t *testing.T) {
	assert.Equal(t, 0.0, occupancyPercent(0, 0))
	assert.Equal(t, 50.0, occupancyPercent(2, 4))
	assert.Equal(t, 33.33, occupancyPercent(1, 3))
}
