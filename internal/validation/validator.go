package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/pkg/errors"

	"student-control/internal/models"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	notBlankTag   = "notblank"
	notBlankText  = "{0} não pode ficar em branco"
	isoDateTag    = "isodate"
	isoDateText   = "{0} deve estar no formato AAAA-MM-DD"
	eventTypeTag  = "eventtype"
	eventTypeText = "{0} deve ser aviso, compromisso ou feriado"
)

func init() {
	Validate = validator.New()

	// Portuguese error messages for validation errors.
	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	Translator, _ = uni.GetTranslator("pt_BR")
	_ = pt_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(notBlankTag, notBlank)
	RegisterCustomTranslation(notBlankTag, notBlankText)
	_ = Validate.RegisterValidation(isoDateTag, isoDate)
	RegisterCustomTranslation(isoDateTag, isoDateText)
	_ = Validate.RegisterValidation(eventTypeTag, eventType)
	RegisterCustomTranslation(eventTypeTag, eventTypeText)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string) {
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates v and converts failures into a *models.ValidationError.
func Struct(v interface{}) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validation")
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{Field: fe.Field(), Error: fe.Translate(Translator)})
	}
	return models.NewValidationError(fields...)
}

// Field reports a single caller-supplied field problem.
func Field(field, msg string) error {
	return models.NewValidationError(models.FieldError{Field: field, Error: msg})
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

func eventType(fl validator.FieldLevel) bool {
	value := models.EventType(fl.Field().String())
	for _, t := range models.EventTypes {
		if value == t {
			return true
		}
	}
	return false
}
