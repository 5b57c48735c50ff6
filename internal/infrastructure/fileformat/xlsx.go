package fileformat

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX lee la primera hoja del libro. La primera fila es el encabezado.
func ReadXLSX(r io.Reader) ([]map[string]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: abrir libro: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer hoja %q: %w", sheets[0], err)
	}
	recs := rowsToRecords(rows)
	for _, rec := range recs {
		if _, ok := rec["tamano"]; !ok {
			rec["tamano"] = "N/A"
		}
	}
	return recs, nil
}

// WriteXLSX escribe registros en una hoja con los encabezados originales.
// Se usa para generar plantillas y en tests.
func WriteXLSX(w io.Writer, recs []map[string]any) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range templateColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return fmt.Errorf("xlsx: encabezado: %w", err)
		}
	}
	for r, rec := range recs {
		for i, col := range templateColumns {
			v, ok := rec[col.key]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("xlsx: fila %d: %w", r+2, err)
			}
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: escribir: %w", err)
	}
	return nil
}

var templateColumns = []struct{ header, key string }{
	{"CODIGO", "codigo"},
	{"Nombre del Producto", "nombre"},
	{"Tipo de producto/Categoria", "categoria"},
	{"Tamaño", "tamano"},
	{"PVP (€)", "precio"},
	{"Nombre coleccion", "coleccion"},
	{"Unidades en Stock", "stock"},
}
