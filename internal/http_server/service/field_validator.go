// Package service
package service

import (
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
	"unicode/utf8"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := utf8.RuneCountInString(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

// CheckOptional nil 表示不修改, 直接通过
func (v *FieldValidator) CheckOptional(value *string) *ApiStatus {
	if value == nil {
		return nil
	}
	return v.CheckString(*value)
}

func invalidArgument(description string) *ApiStatus {
	return &ApiStatus{StatusName: ErrIllegalParam.StatusName, Description: description, HttpCode: BadRequest}
}

var (
	ErrNegativeDuration = invalidArgument("duration must not be negative")
	ErrIdMissing        = invalidArgument("id must not be empty")
)

var (
	nameValidator     *FieldValidator
	passwordValidator *FieldValidator
	emailValidator    *FieldValidator
	commentValidator  *FieldValidator
	planeValidator    *FieldValidator
)

func InitValidator(config *c.HttpServerLimit) {
	nameValidator = &FieldValidator{
		Min:      config.NameLengthMin,
		Max:      config.NameLengthMax,
		ErrShort: invalidArgument("name too short"),
		ErrLong:  invalidArgument("name too long"),
	}
	passwordValidator = &FieldValidator{
		Min:      config.PasswordLengthMin,
		Max:      config.PasswordLengthMax,
		ErrShort: invalidArgument("password too short"),
		ErrLong:  invalidArgument("password too long"),
	}
	emailValidator = &FieldValidator{
		Min:      config.EmailLengthMin,
		Max:      config.EmailLengthMax,
		ErrShort: invalidArgument("email too short"),
		ErrLong:  invalidArgument("email too long"),
	}
	commentValidator = &FieldValidator{
		Min:      1,
		Max:      config.CommentLengthMax,
		ErrShort: invalidArgument("comment must not be empty"),
		ErrLong:  invalidArgument("comment too long"),
	}
	planeValidator = &FieldValidator{
		Min:      config.NameLengthMin,
		Max:      config.NameLengthMax,
		ErrShort: invalidArgument("plane name too short"),
		ErrLong:  invalidArgument("plane name too long"),
	}
}
