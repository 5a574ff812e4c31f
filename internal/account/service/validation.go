package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/common/constants"
	commonerrors "github.com/profiled/accounts/internal/common/errors"
)

var validate = validator.New()

func validateUsername(username string) error {
	tag := fmt.Sprintf("min=%d,max=%d", constants.UsernameMinLength, constants.UsernameMaxLength)
	if err := validate.Var(username, tag); err != nil {
		return ErrValidationUsernameLength
	}
	return nil
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return ErrValidationEmailFormat
	}
	return nil
}

// validatePassword bounds the upper length at 72 bytes, the bcrypt input
// limit; the minimum is policy and comes from configuration.
func validatePassword(password string, minLength int) error {
	tag := fmt.Sprintf("min=%d,max=%d", minLength, constants.PasswordMaxLength)
	if err := validate.Var(password, tag); err != nil {
		return ErrValidationPasswordLength
	}
	return nil
}

func validateProfileValue(field domain.ProfileField, value string) error {
	switch field {
	case domain.FieldEmail:
		return validateEmail(value)
	case domain.FieldDescription:
		if err := validate.Var(value, fmt.Sprintf("max=%d", constants.DescriptionMaxLength)); err != nil {
			return ErrValidationValueTooLong
		}
	case domain.FieldPicture:
		if err := validate.Var(value, fmt.Sprintf("max=%d", constants.PictureMaxLength)); err != nil {
			return ErrValidationValueTooLong
		}
	case domain.FieldLink:
		if err := validate.Var(value, fmt.Sprintf("max=%d", constants.LinkMaxLength)); err != nil {
			return ErrValidationValueTooLong
		}
		if err := validate.Var(value, "omitempty,url"); err != nil {
			return ErrValidationLinkFormat
		}
	default:
		return ErrFieldNotUpdatable
	}
	return nil
}

func validateCreateInput(input CreateInput, passwordMinLength int) error {
	if err := validateUsername(input.Username); err != nil {
		return err
	}
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	return validatePassword(input.Password, passwordMinLength)
}

func IsValidationError(err error) bool {
	de, ok := commonerrors.AsDomainError(err)
	return ok && de.Category() == commonerrors.CategoryValidation
}
