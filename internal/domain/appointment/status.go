package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Appointment Service
// ===============================

type Service string

const (
	ServiceConsultation Service = "consultation"
	ServiceHairFixing   Service = "hair_fixing"
	ServiceMaintenance  Service = "maintenance"
	ServiceStyling      Service = "styling"
)

func ValidService(s Service) bool {
	switch s {
	case ServiceConsultation, ServiceHairFixing, ServiceMaintenance, ServiceStyling:
		return true
	}
	return false
}
