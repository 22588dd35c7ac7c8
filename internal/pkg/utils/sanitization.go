package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v != "" {
			sanitizedArray = append(sanitizedArray, v)
		}
	}
	return sanitizedArray
}

func capitalize(input string) string {
	if len(input) == 0 {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Department = strings.TrimSpace(input.Department)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func sanitizePersonalInfo(input *requests.PersonalInfo) {
	input.FirstName = capitalize(strings.TrimSpace(input.FirstName))
	input.LastName = capitalize(strings.TrimSpace(input.LastName))
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = capitalize(strings.TrimSpace(input.Gender))
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
}

func sanitizeContactInfo(input *requests.ContactInfo) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address.Street = strings.TrimSpace(input.Address.Street)
	input.Address.City = strings.TrimSpace(input.Address.City)
	input.Address.State = strings.TrimSpace(input.Address.State)
	input.Address.Pincode = strings.TrimSpace(input.Address.Pincode)
}

func sanitizeEmergencyContact(input *requests.EmergencyContact) {
	input.Name = strings.TrimSpace(input.Name)
	input.Relationship = strings.TrimSpace(input.Relationship)
	input.Phone = strings.TrimSpace(input.Phone)
}

func sanitizeMedicalHistory(input *requests.MedicalHistory) {
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	input.ChronicConditions = cleanWhiteSpaceFromEachStringOfAnArray(input.ChronicConditions)
	input.CurrentMedications = cleanWhiteSpaceFromEachStringOfAnArray(input.CurrentMedications)
	for i := range input.PastSurgeries {
		input.PastSurgeries[i].SurgeryType = strings.TrimSpace(input.PastSurgeries[i].SurgeryType)
		input.PastSurgeries[i].Hospital = strings.TrimSpace(input.PastSurgeries[i].Hospital)
		input.PastSurgeries[i].Date = strings.TrimSpace(input.PastSurgeries[i].Date)
	}
}

func SanitizeRegisterOPDPatientRequest(input *requests.RegisterOPDPatient) {
	sanitizePersonalInfo(&input.PersonalInfo)
	sanitizeContactInfo(&input.ContactInfo)
	sanitizeEmergencyContact(&input.EmergencyContact)
	if input.MedicalHistory != nil {
		sanitizeMedicalHistory(input.MedicalHistory)
	}
}

func SanitizeRegisterAEPatientRequest(input *requests.RegisterAEPatient) {
	sanitizePersonalInfo(&input.PersonalInfo)
	sanitizeContactInfo(&input.ContactInfo)
	sanitizeEmergencyContact(&input.EmergencyContact)
	if input.EmergencyDetails != nil {
		input.EmergencyDetails.InjuryType = strings.TrimSpace(input.EmergencyDetails.InjuryType)
		input.EmergencyDetails.ArrivalMode = strings.TrimSpace(input.EmergencyDetails.ArrivalMode)
		input.EmergencyDetails.ChiefComplaint = strings.TrimSpace(input.EmergencyDetails.ChiefComplaint)
		input.EmergencyDetails.VitalSigns.BloodPressure = strings.ReplaceAll(input.EmergencyDetails.VitalSigns.BloodPressure, " ", "")
	}
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	if input.ContactInfo != nil {
		sanitizeContactInfo(input.ContactInfo)
	}
	if input.EmergencyContact != nil {
		sanitizeEmergencyContact(input.EmergencyContact)
	}
	if input.MedicalHistory != nil {
		sanitizeMedicalHistory(input.MedicalHistory)
	}
	if input.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*input.Status))
		input.Status = &status
	}
}

func SanitizeCreateWardRequest(input *requests.CreateWard) {
	input.WardNumber = strings.ToUpper(strings.TrimSpace(input.WardNumber))
	input.WardType = strings.TrimSpace(input.WardType)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Status = strings.TrimSpace(input.Status)
}

func SanitizeAdmitPatientRequest(input *requests.AdmitPatient) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.WardID = strings.TrimSpace(input.WardID)
	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	input.Notes = strings.TrimSpace(input.Notes)
	input.ExpectedDischargeDate = strings.TrimSpace(input.ExpectedDischargeDate)
}

func SanitizeTransferPatientRequest(input *requests.TransferPatient) {
	input.AdmissionID = strings.TrimSpace(input.AdmissionID)
	input.NewWardID = strings.TrimSpace(input.NewWardID)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeDischargePatientRequest(input *requests.DischargePatient) {
	input.AdmissionID = strings.TrimSpace(input.AdmissionID)
	input.DischargeNotes = strings.TrimSpace(input.DischargeNotes)
	input.DischargeSummary = strings.TrimSpace(input.DischargeSummary)
}

func SanitizeCreateLabTestRequest(input *requests.CreateLabTest) {
	input.TestName = strings.TrimSpace(input.TestName)
	input.TestType = strings.TrimSpace(input.TestType)
	input.Description = strings.TrimSpace(input.Description)
	input.Unit = strings.TrimSpace(input.Unit)
	input.ReferenceRange = strings.TrimSpace(input.ReferenceRange)
}

func SanitizeRegisterTestRequest(input *requests.RegisterTest) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.LabTestID = strings.TrimSpace(input.LabTestID)
	input.Priority = strings.ToLower(strings.TrimSpace(input.Priority))
	input.ScheduledDate = strings.TrimSpace(input.ScheduledDate)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeAddTestResultRequest(input *requests.AddTestResult) {
	input.RegistrationID = strings.TrimSpace(input.RegistrationID)
	input.Result = strings.TrimSpace(input.Result)
	input.Unit = strings.TrimSpace(input.Unit)
	input.ReferenceRange = strings.TrimSpace(input.ReferenceRange)
	input.Interpretation = strings.TrimSpace(input.Interpretation)
	input.Notes = strings.TrimSpace(input.Notes)
}
