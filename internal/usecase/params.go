package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

// Имена параметров интентов в агенте NLU.
const (
	paramFoodItem = "food-item"
	paramNumber   = "number"
	paramOrderID  = "order_id"
)

// stringList — параметр-список строк. Одиночная строка — список из одного элемента,
// отсутствующий параметр — пустой список.
func stringList(params map[string]any, name string) ([]string, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] is %T, want string", domain.ErrMalformedRequest, name, i, elem)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is %T, want list of strings", domain.ErrMalformedRequest, name, raw)
	}
}

// errNotWholeNumber — дробное количество: это непонятая реплика пользователя, а не сломанный запрос.
var errNotWholeNumber = errors.New("not a whole number")

// intList — параметр-список количеств. Числа из JSON приходят как float64;
// числовые строки допустимы. Дробные значения → errNotWholeNumber.
func intList(params map[string]any, name string) ([]int, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case []any:
		out := make([]int, 0, len(v))
		for i, elem := range v {
			n, err := toInt(elem)
			if errors.Is(err, errNotWholeNumber) {
				return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %v", domain.ErrMalformedRequest, name, i, err)
			}
			out = append(out, n)
		}
		return out, nil
	default:
		n, err := toInt(v)
		if errors.Is(err, errNotWholeNumber) {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedRequest, name, err)
		}
		return []int{n}, nil
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return wholeNumber(n)
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return wholeNumber(f)
	default:
		return 0, fmt.Errorf("%T is not a number", v)
	}
}

func wholeNumber(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%v: %w", f, errNotWholeNumber)
	}
	return int(f), nil
}

// orderIDParam — id заказа: целое число или строка из цифр.
func orderIDParam(params map[string]any) (int64, error) {
	raw, ok := params[paramOrderID]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrMalformedRequest, paramOrderID)
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s=%v is not an integer", domain.ErrMalformedRequest, paramOrderID, v)
		}
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q is not an integer", domain.ErrMalformedRequest, paramOrderID, v)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T", domain.ErrMalformedRequest, paramOrderID, raw)
	}
}
