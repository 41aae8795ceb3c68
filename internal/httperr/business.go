package httperr

import "errors"

// Códigos das regras de negócio de agendamento.
const (
	CodeProviderNotFound     = "provider_not_found"
	CodeUserNotFound         = "user_not_found"
	CodeEmailTaken           = "email_taken"
	CodePastDate             = "past_date"
	CodeOutsideBusinessHours = "outside_business_hours"
	CodeSelfBooking          = "self_booking"
	CodeSlotTaken            = "slot_taken"
	CodeInvalidPassword      = "invalid_password"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode retorna o código da regra violada, ou "" se o erro
// não é um BusinessError.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
