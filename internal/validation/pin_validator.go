package validation

import "fmt"

// PINValidator provides validation for PIN codes.
type PINValidator struct {
	validator *Validator
}

// NewPINValidator creates a new PIN validator
func NewPINValidator() *PINValidator {
	return &PINValidator{
		validator: NewValidator(),
	}
}

// NewPINValidatorWithValidator creates a PIN validator sharing an existing validator
func NewPINValidatorWithValidator(v *Validator) *PINValidator {
	return &PINValidator{validator: v}
}

// ValidatePIN validates a PIN code: it must consist of exactly the
// configured number of ASCII digits (4 by default).
func (pv *PINValidator) ValidatePIN(pin string) error {
	validationError := NewValidationError()
	length := pv.validator.getPINLength()

	if pin == "" {
		validationError.AddRequiredError("pin")
	} else if !pv.validator.IsDigits(pin) {
		validationError.AddInvalidFormatError("pin", pin, fmt.Sprintf("%d digits", length))
	} else if len(pin) != length {
		validationError.AddInvalidLengthError("pin", pin, length, length)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
