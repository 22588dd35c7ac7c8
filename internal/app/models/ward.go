package models

type WardType string

const (
	WardTypeGeneral     WardType = "General"
	WardTypeSemiPrivate WardType = "Semi-Private"
	WardTypePrivate     WardType = "Private"
	WardTypeICU         WardType = "ICU"
	WardTypeEmergency   WardType = "Emergency"
)

type WardSpecialization string

const (
	WardSpecializationGeneral     WardSpecialization = "General"
	WardSpecializationPediatric   WardSpecialization = "Pediatric"
	WardSpecializationMaternity   WardSpecialization = "Maternity"
	WardSpecializationSurgical    WardSpecialization = "Surgical"
	WardSpecializationCardiac     WardSpecialization = "Cardiac"
	WardSpecializationOrthopedic  WardSpecialization = "Orthopedic"
	WardSpecializationPsychiatric WardSpecialization = "Psychiatric"
)

type WardStatus string

const (
	WardStatusActive      WardStatus = "Active"
	WardStatusMaintenance WardStatus = "Maintenance"
	WardStatusClosed      WardStatus = "Closed"
)

// Ward holds bed capacity for one physical ward. OccupiedBeds stays within
// [0, TotalBeds] and is only moved through conditional updates.
type Ward struct {
	ID             string             `json:"id" bson:"_id,omitempty"`
	WardNumber     string             `json:"wardNumber" bson:"wardNumber"`
	WardType       WardType           `json:"wardType" bson:"wardType"`
	Floor          int                `json:"floor" bson:"floor"`
	TotalBeds      int                `json:"totalBeds" bson:"totalBeds"`
	OccupiedBeds   int                `json:"occupiedBeds" bson:"occupiedBeds"`
	Specialization WardSpecialization `json:"specialization" bson:"specialization"`
	Status         WardStatus         `json:"status" bson:"status"`
	TimeModel      `bson:",inline"`
}

func (w *Ward) AvailableBeds() int {
	available := w.TotalBeds - w.OccupiedBeds
	if available < 0 {
		return 0
	}
	return available
}

func (w *Ward) HasAvailableBed() bool {
	return w.OccupiedBeds < w.TotalBeds
}

func (w *Ward) IsAcceptingAdmissions() bool {
	return w.Status == WardStatusActive
}

type WardFilter struct {
	WardType       string
	Status         string
	Specialization string
	OnlyAvailable  bool
	Page           int
	PageSize       int
}
