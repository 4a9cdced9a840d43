package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report failures under the wire field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// RegisterValidation installs a custom validation under the given tag.
// Domain packages call this from init for their enumerated fields.
func RegisterValidation(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks struct fields and returns every failing field at once,
// mapped to the violated rule. Nil means the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// non-struct input, still invalid but has no fields to blame
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string)
	for _, ferr := range verrs {
		fields[ferr.Field()] = ferr.Tag()
	}
	return fields
}
