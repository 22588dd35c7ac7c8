package patients

import (
	"hospital-service/internal/app/models"
	"strconv"
	"strings"
)

var criticalKeywords = []string{
	"trauma",
	"accident",
	"chest pain",
	"breathing",
	"unconscious",
	"bleeding",
	"head",
	"stroke",
	"heart",
	"severe",
}

// SeverityScore sums the triage points for an A&E arrival. A keyword found in
// both the chief complaint and the injury type scores once for each field.
func SeverityScore(details models.EmergencyDetails) int {
	score := 0
	vitals := details.VitalSigns

	if systolic, diastolic, ok := parseBloodPressure(vitals.BloodPressure); ok {
		if systolic > 180 || systolic < 90 || diastolic > 120 || diastolic < 60 {
			score += 2
		}
	}
	if vitals.PulseRate > 120 || vitals.PulseRate < 50 {
		score += 2
	}
	if vitals.Temperature > 39 || vitals.Temperature < 35 {
		score += 2
	}
	if vitals.OxygenSaturation < 92 {
		score += 3
	}

	if details.ArrivalMode == models.ArrivalModeAmbulance {
		score += 2
	}

	complaint := strings.ToLower(details.ChiefComplaint)
	injury := strings.ToLower(details.InjuryType)
	for _, keyword := range criticalKeywords {
		if strings.Contains(complaint, keyword) {
			score++
		}
		if strings.Contains(injury, keyword) {
			score++
		}
	}
	return score
}

func SeverityLevelFor(score int) models.SeverityLevel {
	switch {
	case score >= 6:
		return models.SeverityLevelCritical
	case score >= 4:
		return models.SeverityLevelSerious
	case score >= 2:
		return models.SeverityLevelModerate
	default:
		return models.SeverityLevelStable
	}
}

func parseBloodPressure(value string) (systolic, diastolic int, ok bool) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	systolic, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	diastolic, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return systolic, diastolic, true
}
