package responses

import "time"

type RegisterPatient struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patientId"`
	RegistrationType string    `json:"registrationType"`
	Name             string    `json:"name"`
	SeverityScore    *int      `json:"severityScore,omitempty"`
	SeverityLevel    string    `json:"severityLevel,omitempty"`
	RegisteredAt     time.Time `json:"registeredAt"`
}
