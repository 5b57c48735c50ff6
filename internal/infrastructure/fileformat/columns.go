// Package fileformat lee y escribe los formatos de intercambio del catálogo:
// hojas XLSX, CSV y XML. Todos producen registros con las claves de la tabla
// productos (nombre, categoria, precio, ...), sin convertir tipos.
package fileformat

import (
	"strings"

	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

// Encabezados de la hoja de cálculo original.
var sheetColumns = map[string]string{
	"nombre del producto":        "nombre",
	"tipo de producto/categoria": "categoria",
	"pvp (€)":                    "precio",
	"pvp":                        "precio",
	"unidades en stock":          "stock",
	"codigo":                     "codigo",
	"código":                     "codigo",
	"tamaño":                     "tamano",
	"nombre coleccion":           "coleccion",
	"nombre colección":           "coleccion",
}

// Claves del registro aceptadas tal cual como encabezado.
var recordKeys = map[string]bool{
	"id": true, "nombre": true, "categoria": true, "precio": true, "stock": true,
	"imagen": true, "codigo": true, "tamano": true, "coleccion": true,
	"createdAt": true, "updatedAt": true,
}

// ColumnKey traduce un encabezado a la clave del registro; "" si no se reconoce.
func ColumnKey(header string) string {
	h := strings.TrimSpace(strings.TrimPrefix(header, "\uFEFF"))
	if recordKeys[h] {
		return h
	}
	return sheetColumns[strings.ToLower(h)]
}

// rowsToRecords convierte filas con encabezado en registros. Las celdas vacías
// se omiten y las filas sin ninguna columna reconocida se descartan.
func rowsToRecords(rows [][]string) []map[string]any {
	if len(rows) == 0 {
		return nil
	}
	keys := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		keys[i] = ColumnKey(h)
	}
	out := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(keys))
		for i, cell := range row {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			if v := strings.TrimSpace(cell); v != "" {
				rec[keys[i]] = v
			}
		}
		if len(rec) > 0 {
			out = append(out, rec)
		}
	}
	return out
}

// tableName raíz del XML exportado.
const tableName = record.TableProducts
