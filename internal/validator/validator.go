package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/linguaplay/practice-service/internal/models"
)

// Validator combines struct-tag validation with question content checks.
type Validator struct {
	structValidator   *validator.Validate
	questionValidator *QuestionValidator
}

// New creates a centralized validator instance.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:   structValidator,
		questionValidator: NewQuestionValidator(),
	}
}

// Validate validates struct tags.
func (v *Validator) Validate(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Question returns the question content validator.
func (v *Validator) Question() *QuestionValidator {
	return v.questionValidator
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("game_type", validateGameType)
	validate.RegisterValidation("category", validateCategory)

	// Report field names from json tags for better error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateGameType(fl validator.FieldLevel) bool {
	return models.GameType(fl.Field().String()).IsValid()
}

func validateCategory(fl validator.FieldLevel) bool {
	switch models.Category(fl.Field().String()) {
	case models.CategoryReading, models.CategoryWriting,
		models.CategorySpeaking, models.CategoryListening:
		return true
	}
	return false
}
