package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"oficina_jobs/internal/domain/entities"
)

var once sync.Once

// Register installs the domain enum validators on gin's binding engine
// (jobstatus, paymenttype, stepstatus, employeerole) and reports fields by
// their json name. Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("jobstatus", enum(func(s string) bool {
			return entities.JobStatus(strings.ToUpper(s)).IsValid()
		}))
		_ = v.RegisterValidation("paymenttype", enum(func(s string) bool {
			return entities.PaymentType(s).IsValid()
		}))
		_ = v.RegisterValidation("stepstatus", enum(func(s string) bool {
			return entities.StepStatus(s).IsValid()
		}))
		_ = v.RegisterValidation("employeerole", enum(func(s string) bool {
			return entities.EmployeeRole(strings.ToLower(s)).IsValid()
		}))
	})
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		name, _, _ = strings.Cut(f.Tag.Get("form"), ",")
	}
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func enum(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || valid(s)
	}
}
