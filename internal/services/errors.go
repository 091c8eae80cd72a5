package services

import "errors"

// ErrMissingPlantID rejects a dependent-record save whose parent key is
// unresolved. The check runs before any repository call, so a failed
// save has no partial effect.
var ErrMissingPlantID = errors.New("plant_id is required: save the plant first")
