package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/babarot/brm/internal/shell"
	"github.com/docker/go-units"
	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("mapstructure"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("trashdir", validateTrashDir)
	_ = validate.RegisterValidation("glob", validateGlob)
	_ = validate.RegisterValidation("size", validateSize)
	_ = validate.RegisterValidation("duration", validateDuration)
}

// Validate checks cfg against its struct tags
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// validateTrashDir accepts any path that expands cleanly. Whether it is
// usable as a directory is decided when locations are resolved.
func validateTrashDir(fl validator.FieldLevel) bool {
	path := strings.TrimSpace(fl.Field().String())
	if path == "" || strings.ContainsRune(path, 0) {
		return false
	}
	_, err := shell.ExpandHome(path)
	return err == nil
}

// validateGlob checks that a protected pattern compiles
func validateGlob(fl validator.FieldLevel) bool {
	pattern, err := shell.ExpandHome(fl.Field().String())
	if err != nil || pattern == "" {
		return false
	}
	_, err = glob.Compile(pattern, '/')
	return err == nil
}

// validateSize validates the size format (e.g., "10MB", "1GB")
func validateSize(fl validator.FieldLevel) bool {
	_, err := units.FromHumanSize(fl.Field().String())
	return err == nil
}

// validateDuration accepts anything k1LoW/duration parses, but no
// negative or zero values
func validateDuration(fl validator.FieldLevel) bool {
	d, err := duration.Parse(fl.Field().String())
	return err == nil && d > 0
}

func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("validation error: field %s, %q is invalid (%s)",
				e.Namespace(), fmt.Sprint(e.Value()), e.Tag())
		}
	}
	return err
}
