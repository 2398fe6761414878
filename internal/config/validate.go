// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/sparserec/internal/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// tagLogLevel accepts exactly the names in logging.ValidLevels.
const tagLogLevel = "loglevel"

// getValidator returns the shared validator. Field names in errors use the
// koanf tag so messages match the keys users write.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})
		if err := validate.RegisterValidation(tagLogLevel, validLogLevel); err != nil {
			panic(fmt.Sprintf("config: register %s validation: %v", tagLogLevel, err))
		}
	})

	return validate
}

// Validate checks c against its struct tags. Every failing field is reported,
// joined with "; ", and the result wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	messages := make([]string, len(validationErrs))
	for i, fe := range validationErrs {
		messages[i] = translateError(fe)
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
}

// validLogLevel reports whether the field holds a level logging.ParseLevel knows.
func validLogLevel(fl validator.FieldLevel) bool {
	return slices.Contains(logging.ValidLevels, fl.Field().String())
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"gt":    "%s must be greater than %s",
}

// translateError converts a validator.FieldError to a readable message keyed
// by the dotted config path (e.g. "matrix.transpose_shape").
func translateError(fe validator.FieldError) string {
	field := keyPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case tagLogLevel:
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(logging.ValidLevels, " "))
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, field, fe.Param())
	}

	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// keyPath drops the root struct name from a validator namespace.
func keyPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}
