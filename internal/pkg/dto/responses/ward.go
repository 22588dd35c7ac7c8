package responses

import "time"

type Ward struct {
	ID             string    `json:"id"`
	WardNumber     string    `json:"wardNumber"`
	WardType       string    `json:"wardType"`
	Floor          int       `json:"floor"`
	TotalBeds      int       `json:"totalBeds"`
	OccupiedBeds   int       `json:"occupiedBeds"`
	AvailableBeds  int       `json:"availableBeds"`
	Specialization string    `json:"specialization"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Bed struct {
	BedNumber   int    `json:"bedNumber"`
	Occupied    bool   `json:"occupied"`
	AdmissionID string `json:"admissionId,omitempty"`
	PatientID   string `json:"patientId,omitempty"`
	Status      string `json:"status,omitempty"`
}

type WardBeds struct {
	WardID        string `json:"wardId"`
	WardNumber    string `json:"wardNumber"`
	TotalBeds     int    `json:"totalBeds"`
	OccupiedBeds  int    `json:"occupiedBeds"`
	AvailableBeds int    `json:"availableBeds"`
	Beds          []Bed  `json:"beds"`
}

type WardCensusFile struct {
	FileName string
	Content  []byte
}
