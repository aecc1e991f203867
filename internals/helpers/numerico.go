// file: internals/helpers/numerico.go
package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Los montos viajan por el API como string (así los serializa el detalle de
// registro) o como número; estos helpers centralizan la coerción.

// ANumero intenta convertir v a float64 finito.
// Devuelve (0, false) para nil, texto no numérico, NaN o Inf.
func ANumero(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case float32:
		return ANumero(float64(t))
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case decimal.Decimal:
		f, _ := t.Float64()
		return f, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// NumeroODefecto: como ANumero pero con 0 como valor de relleno.
func NumeroODefecto(v any) float64 {
	f, ok := ANumero(v)
	if !ok {
		return 0
	}
	return f
}

// ATexto convierte v a texto para comparaciones; nil queda como "".
func ATexto(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case decimal.Decimal:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// ADecimal convierte v a decimal; entradas inválidas quedan en 0.
func ADecimal(v any) decimal.Decimal {
	switch t := v.(type) {
	case decimal.Decimal:
		return t
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case int64:
		return decimal.NewFromInt(t)
	default:
		return decimal.Zero
	}
}
