package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// Details превращает ошибки валидации в map "поле -> нарушенное правило" для ответа клиенту.
// Для ошибок другого типа возвращает nil.
func Details(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[fieldPath(fe.Namespace())] = rule
	}
	return details
}

// fieldPath убирает имя корневой структуры: "OptimizeRouteRequest.Locations[1].Lat" -> "Locations[1].Lat"
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
