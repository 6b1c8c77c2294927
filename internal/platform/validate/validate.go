// Package validate holds the process-wide struct validator with english messages
package validate

import (
	"reflect"
	"strings"
	"sync"

	perr "openship/internal/platform/errors"
	"openship/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Svc holds a singleton validator and translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Svc
)

// Get returns the validator singleton, initializing on first use
func Get() *Svc {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerSemver(v, trans)

		svc = &Svc{Validator: v, Translator: trans}
	})
	return svc
}

// Struct validates v and maps the first failure to a project validation error
// the offending json field name is attached with perr.WithField
func Struct(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Newf(perr.ErrorCodeValidation, "validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// FieldAndMessage returns the first field and translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

func registerSemver(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("semver", trans,
		func(ut ut.Translator) error {
			return ut.Add("semver", "{0} must be a semantic version", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("semver", fe.Field())
			return msg
		},
	)
}
