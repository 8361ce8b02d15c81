package getdir

import (
	"errors"

	"github.com/go-playground/validator/v10"
	getdirerrors "github.com/leodido/getdir/errors"
	internalmatch "github.com/leodido/getdir/internal/match"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("childname", func(fl validator.FieldLevel) bool {
		return internalmatch.IsChildName(fl.Field().String())
	})

	return v
}

// Validate checks the search configuration.
//
// It reports every problem at once, as an *errors.ValidationError.
// Having no targets is not an error: such a search just never finds anything.
func (s Search) Validate() error {
	var errs []error

	if err := validate.Var(s.dir, "required"); err != nil {
		errs = append(errs, getdirerrors.ErrNoStartDirectory)
	}
	if err := validate.Var(s.depth, "min=1"); err != nil {
		errs = append(errs, getdirerrors.NewInvalidDepthError(s.depth))
	}
	for i, t := range s.targets {
		if err := validate.Struct(t); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				errs = append(errs, getdirerrors.NewInvalidTargetError(i, t.String(), err.Error()))

				continue
			}
			for _, fieldErr := range fieldErrs {
				errs = append(errs, getdirerrors.NewInvalidTargetError(i, t.String(), targetMessage(fieldErr)))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return getdirerrors.NewSearchValidationError(errs)
}

func targetMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "name is required"
	case "childname":
		return "name must denote an immediate child (no path separators, no '.' or '..')"
	case "oneof":
		return "unknown kind"
	}

	return fieldErr.Error()
}
