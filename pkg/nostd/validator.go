package nostd

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground/validator for echo with english
// translations for validation error messages.
type CustomValidator struct {
	Validator *validator.Validate
	trans     ut.Translator
}

func (cv *CustomValidator) TransInit() error {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	trans, found := uni.GetTranslator("en")
	if !found {
		return errors.New("translator not found: en")
	}
	cv.trans = trans

	return enTranslations.RegisterDefaultTranslations(cv.Validator, trans)
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.Validator.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if cv.trans != nil && errors.As(err, &ve) {
			messages := make([]string, 0, len(ve))
			for _, fe := range ve {
				messages = append(messages, fe.Translate(cv.trans))
			}
			return echo.NewHTTPError(http.StatusBadRequest, strings.Join(messages, "; "))
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
