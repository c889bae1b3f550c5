package brand

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tmtheme/internal/hsl"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	brandIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hsl", func(fl validator.FieldLevel) bool {
			return hsl.Valid(fl.Field().String())
		})

		_ = v.RegisterValidation("stop", func(fl validator.FieldLevel) bool {
			_, ok := tokens.ParseStop(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("brand_id", func(fl validator.FieldLevel) bool {
			return brandIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("brand_namespace", func(fl validator.FieldLevel) bool {
			return !ReservedNamespace(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks ids, namespaces, stops and HSL values of pkg.
func Validate(pkg *Package) error {
	if pkg == nil {
		return themeerrors.NewValidationError("brand", "package is nil", nil)
	}

	if err := validatorInstance().Struct(pkg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := lowerNamespace(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		switch ve.Tag() {
		case "hsl":
			msg = fmt.Sprintf("%s: %q is not an HSL triplet", field, ve.Value())
		case "brand_namespace":
			msg = fmt.Sprintf("%s: %q is reserved for engine variables", field, ve.Value())
		}
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("brand", err.Error(), err)
}

func lowerNamespace(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
