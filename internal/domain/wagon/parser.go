package wagon

import (
	"strconv"
	"strings"
)

// NumberLength longitud fija del número de vagón (8 dígitos ASCII).
const NumberLength = 8

// IsValidNumber valida que token sean exactamente 8 dígitos ASCII.
// No acepta espacios internos, signos ni dígitos Unicode.
func IsValidNumber(token string) bool {
	if len(token) != NumberLength {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

// ParseNumbers tokeniza texto libre (multilínea y/o separado por comas) y
// particiona los tokens no vacíos en válidos e inválidos, preservando el orden
// de entrada. Los duplicados NO se eliminan: el llamador decide qué hacer con
// el mismo vagón repetido en un lote. Entrada vacía produce dos listas vacías.
// Función pura, sin efectos.
func ParseNumbers(raw string) (valid, invalid []string) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if IsValidNumber(t) {
			valid = append(valid, t)
		} else {
			invalid = append(invalid, t)
		}
	}
	return valid, invalid
}

// Normalize convierte un token válido a su forma numérica de almacenamiento.
// ok es false si el token no pasa IsValidNumber.
func Normalize(token string) (int64, bool) {
	if !IsValidNumber(token) {
		return 0, false
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Format devuelve la representación de 8 dígitos de un número almacenado
// (con ceros a la izquierda).
func Format(n int64) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < NumberLength {
		s = "0" + s
	}
	return s
}
