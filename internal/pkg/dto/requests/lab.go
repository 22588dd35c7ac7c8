package requests

type CreateLabTest struct {
	TestName       string   `json:"testName" validate:"required,min=2,max=100"`
	TestType       string   `json:"testType" validate:"required,oneof='Blood Test' MRI X-Ray CT-Scan ECG Ultrasound"`
	Description    string   `json:"description" validate:"omitempty,max=500"`
	Unit           string   `json:"unit" validate:"omitempty,max=20"`
	ReferenceRange string   `json:"referenceRange" validate:"omitempty,max=100"`
	Price          *float64 `json:"price" validate:"required,gte=0"`
}

type UpdateLabTest struct {
	TestName       *string  `json:"testName" validate:"omitempty,min=2,max=100"`
	TestType       *string  `json:"testType" validate:"omitempty,oneof='Blood Test' MRI X-Ray CT-Scan ECG Ultrasound"`
	Description    *string  `json:"description" validate:"omitempty,max=500"`
	Unit           *string  `json:"unit" validate:"omitempty,max=20"`
	ReferenceRange *string  `json:"referenceRange" validate:"omitempty,max=100"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	IsActive       *bool    `json:"isActive"`
}

type LabTestQuery struct {
	TestType        string `validate:"omitempty,oneof='Blood Test' MRI X-Ray CT-Scan ECG Ultrasound"`
	Search          string `validate:"omitempty,max=100"`
	IncludeInactive bool
	Pagination
}

type RegisterTest struct {
	PatientID     string `json:"patientId" validate:"required,mongodb"`
	LabTestID     string `json:"labTestId" validate:"required,mongodb"`
	Priority      string `json:"priority" validate:"omitempty,oneof=normal urgent emergency"`
	ScheduledDate string `json:"scheduledDate" validate:"omitempty,iso_date,not_past_date"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateTestRegistrationStatus struct {
	Status string `json:"status" validate:"required,oneof=Registered Collected Processing Completed Delivered Cancelled"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
}

type TestRegistrationQuery struct {
	PatientID string `validate:"omitempty,mongodb"`
	Status    string `validate:"omitempty,oneof=Registered Collected Processing Completed Delivered Cancelled"`
	Priority  string `validate:"omitempty,oneof=normal urgent emergency"`
	Pagination
}

type AddTestResult struct {
	RegistrationID string `json:"registrationId" validate:"required,mongodb"`
	Result         string `json:"result" validate:"required,max=1000"`
	Unit           string `json:"unit" validate:"omitempty,max=20"`
	ReferenceRange string `json:"referenceRange" validate:"omitempty,max=100"`
	Interpretation string `json:"interpretation" validate:"omitempty,max=1000"`
	Notes          string `json:"notes" validate:"omitempty,max=1000"`
}

type UploadTestReport struct {
	FileName    string
	ContentType string
	Size        int64
}
