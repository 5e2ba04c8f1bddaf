package service

import (
	"regexp"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/florae/verdant/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	// Completion dates travel as date-only strings. Anything with a time
	// component is rejected before it reaches the store.
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const dateLayout = "2006-01-02"

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("habit_color", func(fl validator.FieldLevel) bool {
			switch entity.HabitColor(fl.Field().String()) {
			case entity.ColorYellow, entity.ColorPink, entity.ColorBlue,
				entity.ColorGreen, entity.ColorOrange, entity.ColorPurple:
				return true
			}
			return false
		})
	})
}

func validDateString(s string) bool {
	return dateRe.MatchString(s)
}
