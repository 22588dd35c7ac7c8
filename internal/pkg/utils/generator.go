package utils

import (
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GeneratePatientID renders a year scoped patient number, e.g. PAT-2024-000042.
func GeneratePatientID(year int, sequence int64) string {
	return fmt.Sprintf(constvars.PatientIDFormat, constvars.PatientIDPrefix, year, sequence)
}

func PatientCounterKey(t time.Time) string {
	return fmt.Sprintf(constvars.PatientCounterKeyYear, t.Year())
}

func GenerateLabReportObjectName(testResultID, originalFileName string) string {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	return fmt.Sprintf(constvars.LabReportObjectPath, testResultID, uuid.NewString(), ext)
}

func WardLockKey(wardID string) string {
	return fmt.Sprintf(constvars.WardLockKeyFormat, wardID)
}

func SessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
}

func WardCensusFileName(t time.Time) string {
	return fmt.Sprintf("ward-census-%s.xlsx", t.UTC().Format("20060102-150405"))
}
