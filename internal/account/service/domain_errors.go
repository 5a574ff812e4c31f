package service

import (
	commonerrors "github.com/profiled/accounts/internal/common/errors"
)

var (
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		401,
		"invalid email or password",
	)

	// Duplicate email maps to 400, the same status as other bad input on
	// the creation and update paths.
	ErrEmailTaken = commonerrors.NewDomainError(
		"EMAIL_TAKEN",
		commonerrors.CategoryConflict,
		400,
		"email already registered",
	)

	ErrInvalidToken = commonerrors.NewDomainError(
		"INVALID_TOKEN",
		commonerrors.CategoryUnauthorized,
		401,
		"token is not valid",
	)

	// Wrong current password on the change-password path is a secondary
	// check behind an already authenticated request, so it reports 400
	// rather than 401.
	ErrCurrentPasswordInvalid = commonerrors.NewDomainError(
		"CURRENT_PASSWORD_INVALID",
		commonerrors.CategoryAuth,
		400,
		"current password is invalid",
	)

	ErrFieldNotUpdatable = commonerrors.NewDomainError(
		"FIELD_NOT_UPDATABLE",
		commonerrors.CategoryValidation,
		400,
		"field cannot be updated",
	)

	ErrValidationUsernameLength = commonerrors.NewDomainError(
		"VALIDATION_USERNAME_LENGTH",
		commonerrors.CategoryValidation,
		400,
		"username length is invalid",
	)

	ErrValidationEmailFormat = commonerrors.NewDomainError(
		"VALIDATION_EMAIL_FORMAT",
		commonerrors.CategoryValidation,
		400,
		"email format is invalid",
	)

	ErrValidationPasswordLength = commonerrors.NewDomainError(
		"VALIDATION_PASSWORD_LENGTH",
		commonerrors.CategoryValidation,
		400,
		"password length is invalid",
	)

	ErrValidationValueTooLong = commonerrors.NewDomainError(
		"VALIDATION_VALUE_TOO_LONG",
		commonerrors.CategoryValidation,
		400,
		"value is too long",
	)

	ErrValidationLinkFormat = commonerrors.NewDomainError(
		"VALIDATION_LINK_FORMAT",
		commonerrors.CategoryValidation,
		400,
		"link must be a valid URL",
	)
)
