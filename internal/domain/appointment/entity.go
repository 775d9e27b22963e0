package appointment

import (
	"github.com/hairlookapp/hairlook-api/internal/models"
)

// Cancel marks the appointment cancelled. The transition is allowed from any
// current status and re-cancelling an already cancelled booking is a no-op.
func Cancel(ap *models.Appointment) {
	ap.Status = string(StatusCancelled)
}
