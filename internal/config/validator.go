package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	plerrors "github.com/alexisbeaulieu97/plrefresh/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	storageKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)
	footerKinds       = map[string]struct{}{FooterBack: {}, FooterAuto: {}, FooterPlain: {}}
)

// validatorInstance configures and returns the shared validator. Field names
// in errors follow the yaml tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("footer_kind", func(fl validator.FieldLevel) bool {
			_, ok := footerKinds[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("storage_key", func(fl validator.FieldLevel) bool {
			return storageKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate checks field rules and then the cross-field constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return plerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Animation.Slow < cfg.Animation.Fast {
		return plerrors.NewValidationError("animation.slow",
			fmt.Sprintf("must not be shorter than animation.fast (%s)", cfg.Animation.Fast), nil)
	}

	return nil
}

// convertValidationError reports the first failed rule as a ValidationError.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := fieldName(fe)
		msg := fmt.Sprintf("%v failed validation for tag '%s'", fe.Value(), fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%v failed validation for tag '%s=%s'", fe.Value(), fe.Tag(), fe.Param())
		}
		return plerrors.NewValidationError(field, msg, err)
	}

	return plerrors.NewValidationError("config", err.Error(), err)
}

// fieldName drops the root struct from the namespace: "Config.footer.kind"
// becomes "footer.kind".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
