package validation

import (
	"strings"
	"time"
	"unicode"

	"chronopulse/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if a tag name length is within configured limits
func (v *Validator) IsValidNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= v.getNameMinLength() && length <= v.getNameMaxLength()
}

// IsValidNoteLength checks if a note length is within configured limits
func (v *Validator) IsValidNoteLength(note string) bool {
	return len(note) <= v.getNoteMaxLength()
}

// IsValidTimeRange checks if start time is not after end time
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true // Open entry, no end time
	}
	return !endTime.Before(startTime)
}

// IsValidID checks if an identifier is a usable opaque id
func (v *Validator) IsValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// IsDigits checks if a string consists solely of ASCII digits
func (v *Validator) IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// TrimName trims whitespace and returns the cleaned name
func (v *Validator) TrimName(s string) string {
	return strings.TrimSpace(s)
}

// getNameMinLength returns configured minimum name length or default
func (v *Validator) getNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.NameMinLength
	}
	return 1
}

// getNameMaxLength returns configured maximum name length or default
func (v *Validator) getNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 255
}

// getNoteMaxLength returns configured maximum note length or default
func (v *Validator) getNoteMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NoteMaxLength
	}
	return 1000
}

// getPINLength returns configured PIN length or default
func (v *Validator) getPINLength() int {
	if v.config != nil {
		return v.config.Validation.PINLength
	}
	return 4
}
