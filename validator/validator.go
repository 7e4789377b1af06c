package validator

import (
	"reflect"
	"sync"

	"github.com/NethermindEth/fixedseq/utils"
	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Validator returns a singleton that can be used to validate configuration structs
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New()

		// Register these types to use their string representation for validation
		// purposes
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if l, ok := field.Interface().(utils.LogLevel); ok {
				if l < utils.DEBUG || l > utils.FATAL {
					return ""
				}
				return l.String()
			}
			panic("not a utils.LogLevel")
		}, utils.LogLevel(0))
	})
	return v
}
