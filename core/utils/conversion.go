package utils

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"time"
)

// CellString converts a decoded cell value to its comparison string.
// The second return value is false when the value is null-equivalent (nil, NaN).
// Numbers use their natural decimal representation, never a locale format.
func CellString(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		if v == nil {
			return "", false
		}
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case float64:
		if math.IsNaN(v) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		if math.IsNaN(float64(v)) {
			return "", false
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case time.Time:
		if v.IsZero() {
			return "", false
		}
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02"), true
		}
		return v.Format("2006-01-02 15:04:05"), true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case driver.Valuer:
		inner, err := v.Value()
		if err != nil {
			return fmt.Sprintf("%v", v), true
		}
		return CellString(inner)
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
