package requests

type CreateWard struct {
	WardNumber     string `json:"wardNumber" validate:"required,ward_number"`
	WardType       string `json:"wardType" validate:"required,oneof=General Semi-Private Private ICU Emergency"`
	Floor          *int   `json:"floor" validate:"required,gte=0"`
	TotalBeds      int    `json:"totalBeds" validate:"gte=1"`
	Specialization string `json:"specialization" validate:"omitempty,oneof=General Pediatric Maternity Surgical Cardiac Orthopedic Psychiatric"`
	Status         string `json:"status" validate:"omitempty,oneof=Active Maintenance Closed"`
}

type UpdateWard struct {
	WardType       *string `json:"wardType" validate:"omitempty,oneof=General Semi-Private Private ICU Emergency"`
	Floor          *int    `json:"floor" validate:"omitempty,gte=0"`
	TotalBeds      *int    `json:"totalBeds" validate:"omitempty,gte=1"`
	Specialization *string `json:"specialization" validate:"omitempty,oneof=General Pediatric Maternity Surgical Cardiac Orthopedic Psychiatric"`
	Status         *string `json:"status" validate:"omitempty,oneof=Active Maintenance Closed"`
}

type WardQuery struct {
	WardType       string `validate:"omitempty,oneof=General Semi-Private Private ICU Emergency"`
	Status         string `validate:"omitempty,oneof=Active Maintenance Closed"`
	Specialization string `validate:"omitempty,oneof=General Pediatric Maternity Surgical Cardiac Orthopedic Psychiatric"`
	OnlyAvailable  bool
	Pagination
}
