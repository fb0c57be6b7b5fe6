package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
)

type SignupForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (f *SignupForm) Validate() error {
	err := validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
		validation.Field(&f.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	// The look-ahead pattern needs regexp2; stdlib regexp can't express it.
	passwordExp := regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	if ok, _ := passwordExp.MatchString(f.Password); !ok {
		return errInvalidPassword
	}

	if f.Password != f.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}

type SigninForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Remember string `form:"remember"`
}

func (f *SigninForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}
