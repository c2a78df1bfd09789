package depositdelivery

import "github.com/go-playground/validator/v10"

// ValidDepositAmount builds the binding validator for the platform's
// enumerated deposit amounts.
func ValidDepositAmount(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}

	return func(fieldLevel validator.FieldLevel) bool {
		amount, ok := fieldLevel.Field().Interface().(string)
		if !ok {
			return false
		}

		_, ok = set[amount]

		return ok
	}
}
