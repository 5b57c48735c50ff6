// Package naming traduce nombres de campos entre la convención de la aplicación
// (camelCase) y la del backend remoto (snake_case).
package naming

import (
	"regexp"
	"strings"
)

var (
	upperRe      = regexp.MustCompile(`([A-Z])`)
	underscoreRe = regexp.MustCompile(`_([a-z])`)
)

// ToSnake convierte "productoId" en "producto_id". Cada mayúscula se antepone con "_".
func ToSnake(key string) string {
	return strings.ToLower(upperRe.ReplaceAllString(key, "_$1"))
}

// ToCamel convierte "producto_id" en "productoId". Solo "_" seguido de minúscula se colapsa.
func ToCamel(key string) string {
	return underscoreRe.ReplaceAllStringFunc(key, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// SnakeMap devuelve una copia del registro con las claves en snake_case.
func SnakeMap(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[ToSnake(k)] = v
	}
	return out
}

// CamelMap devuelve una copia del registro con las claves en camelCase.
func CamelMap(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[ToCamel(k)] = v
	}
	return out
}
