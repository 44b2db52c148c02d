package validation

import (
	"time"
)

// EntryValidator provides validation for time entry operations
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// NewEntryValidatorWithValidator creates an entry validator sharing an existing validator
func NewEntryValidatorWithValidator(v *Validator) *EntryValidator {
	return &EntryValidator{validator: v}
}

// ValidateEntryStart validates the inputs for opening a new entry
func (ev *EntryValidator) ValidateEntryStart(projectID, activityID, note string) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidID(projectID) {
		validationError.AddRequiredError("project_id")
	}
	if !ev.validator.IsValidID(activityID) {
		validationError.AddRequiredError("activity_id")
	}
	if !ev.validator.IsValidNoteLength(note) {
		validationError.AddInvalidLengthError("note", note, 0, ev.validator.getNoteMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateHistoricalEntry validates a fully-closed entry added with
// explicit start and end times.
func (ev *EntryValidator) ValidateHistoricalEntry(projectID, activityID string, startTime, endTime time.Time, note string) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidID(projectID) {
		validationError.AddRequiredError("project_id")
	}
	if !ev.validator.IsValidID(activityID) {
		validationError.AddRequiredError("activity_id")
	}
	if !ev.validator.IsValidNoteLength(note) {
		validationError.AddInvalidLengthError("note", note, 0, ev.validator.getNoteMaxLength())
	}

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !ev.validator.IsReasonableDate(startTime) {
		validationError.AddInvalidValueError("start_time", startTime, "must be within reasonable date range")
	}

	if endTime.IsZero() {
		validationError.AddRequiredError("end_time")
	} else if !ev.validator.IsValidTimeRange(startTime, &endTime) {
		validationError.AddInvalidRangeError("time_range", map[string]time.Time{
			"start": startTime,
			"end":   endTime,
		}, "end time must not be before start time")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTagName validates a project or activity name, returning the
// trimmed name on success.
func (ev *EntryValidator) ValidateTagName(field, name string) (string, error) {
	validationError := NewValidationError()

	if !ev.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError(field)
	} else if !ev.validator.IsValidNameLength(name) {
		validationError.AddInvalidLengthError(field, name, ev.validator.getNameMinLength(), ev.validator.getNameMaxLength())
	}

	if validationError.HasErrors() {
		return "", validationError
	}
	return ev.validator.TrimName(name), nil
}
