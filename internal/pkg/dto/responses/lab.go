package responses

import "time"

type TestReport struct {
	TestResultID string    `json:"testResultId"`
	ObjectName   string    `json:"objectName"`
	URL          string    `json:"url"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
