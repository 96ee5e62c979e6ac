package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
)

// FormatTag is the struct tag FormatValidation is registered under.
const FormatTag = "textformat"

// FormatValidation accepts any tag cryptoalg.ParseFormat understands.
func FormatValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseFormat(fl.Field().String())
	return err == nil
}

// New returns a validator with the custom tags of this package registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(FormatTag, FormatValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
