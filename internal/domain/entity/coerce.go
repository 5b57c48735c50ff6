package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Conversión permisiva de valores poco tipados (filas remotas, archivos importados).
// Igual que parseFloat/parseInt: se acepta el prefijo numérico y lo demás vale cero.

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// Límites de un importe. Fuera de ellos sumar o convertir a float obliga a
// materializar enteros de tamaño 10^exponente.
const (
	MaxDecimalExponent = 30
	MaxDecimalDigits   = 40
)

// DecimalInRange indica si d tiene exponente en ±MaxDecimalExponent y como
// mucho MaxDecimalDigits dígitos significativos.
func DecimalInRange(d decimal.Decimal) bool {
	e := d.Exponent()
	if e < -MaxDecimalExponent || e > MaxDecimalExponent {
		return false
	}
	// 4 bits por dígito decimal acota NumDigits sin calcular potencias grandes.
	if d.Coefficient().BitLen() > 4*MaxDecimalDigits {
		return false
	}
	return d.NumDigits() <= MaxDecimalDigits
}

// ToDecimal convierte v a decimal; nil, vacío, no numérico o fuera de rango
// devuelve cero.
func ToDecimal(v any) decimal.Decimal {
	d := toDecimal(v)
	if !DecimalInRange(d) {
		return decimal.Zero
	}
	return d
}

func toDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case decimal.NullDecimal:
		if !x.Valid {
			return decimal.Zero
		}
		return x.Decimal
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		return toDecimal(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int16:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		return toDecimal(string(x))
	case string:
		m := floatPrefix.FindString(strings.TrimSpace(x))
		if m == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(normalizeNumber(m))
		if err != nil {
			return decimal.Zero
		}
		return d
	case driver.Valuer:
		val, err := x.Value()
		if err != nil {
			return decimal.Zero
		}
		if _, again := val.(driver.Valuer); again {
			return decimal.Zero
		}
		return toDecimal(val)
	}
	return decimal.Zero
}

// ToInt64 convierte v a entero truncando decimales; lo no numérico vale cero.
func ToInt64(v any) int64 {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case *int64:
		if x == nil {
			return 0
		}
		return *x
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return int64(x)
	case float32:
		return ToInt64(float64(x))
	case json.Number:
		return ToInt64(string(x))
	case string:
		m := intPrefix.FindString(strings.TrimSpace(x))
		n, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case decimal.Decimal:
		return x.IntPart()
	}
	return ToDecimal(v).IntPart()
}

// ToInt es ToInt64 acotado a int.
func ToInt(v any) int {
	return int(ToInt64(v))
}

// ToOptionalID devuelve nil cuando v no representa un id positivo.
func ToOptionalID(v any) *int64 {
	id := ToInt64(v)
	if id <= 0 {
		return nil
	}
	return &id
}

// ToString convierte v a texto; nil devuelve "".
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ToTime interpreta marcas de tiempo ISO-8601; lo irreconocible devuelve el instante cero.
func ToTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case *time.Time:
		if x == nil {
			return time.Time{}
		}
		return *x
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// ToOptionalTime devuelve nil cuando v no es una marca de tiempo válida.
func ToOptionalTime(v any) *time.Time {
	t := ToTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

// normalizeNumber completa formas como "-.5" o "12." que acepta parseFloat.
func normalizeNumber(s string) string {
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.Replace(s, ".e", "e", 1)
	s = strings.Replace(s, ".E", "E", 1)
	s = strings.TrimSuffix(s, ".")
	if sign == "+" {
		sign = ""
	}
	return sign + s
}
