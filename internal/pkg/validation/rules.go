package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// GradeCodePattern allows names such as "Exam1", "Quiz 2" or "final-project".
	GradeCodePattern = `^[A-Za-z0-9][A-Za-z0-9 _.\-]{0,63}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	GradeCode *regexp.Regexp
}{
	GradeCode: regexp.MustCompile(GradeCodePattern),
}

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator with the custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		// The validator was just created, registration cannot fail.
		_ = Register(instance)
	})
	return instance
}

// Register installs the custom rules on v. It is used for the shared
// validator and for gin's binding engine.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	return v.RegisterValidation("gradecode", gradeCode)
}

// ValidateStruct runs the shared validator over s.
func ValidateStruct(s interface{}) error {
	return Validator().Struct(s)
}

// ValidGradeCode reports whether code is an acceptable grade name.
func ValidGradeCode(code string) bool {
	return CompiledPatterns.GradeCode.MatchString(code)
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func gradeCode(fl validator.FieldLevel) bool {
	return ValidGradeCode(fl.Field().String())
}

// jsonFieldName reports fields by their json name so error details match
// the request body.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
