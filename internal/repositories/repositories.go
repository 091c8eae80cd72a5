package repositories

import (
	"time"

	"planttracker/internal/models"
)

// dateArg converts an optional model date into a bind parameter,
// passing NULL (not a sentinel) when the field is unset.
func dateArg(d *models.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.Time
}

// scanDate converts a scanned nullable DATE column back into the model
// representation.
func scanDate(t *time.Time) *models.Date {
	if t == nil {
		return nil
	}
	d := models.DateOf(*t)
	return &d
}
