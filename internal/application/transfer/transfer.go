// Package transfer importa y exporta el catálogo de productos (copias de
// seguridad JSON, hojas XLSX/CSV de la tienda y XML).
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/fileformat"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

// Formatos soportados.
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatXML  = "xml"
)

// ProductStore destino y origen del catálogo.
type ProductStore interface {
	Create(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
}

// UseCase importación y exportación masiva.
type UseCase struct {
	products ProductStore
	now      func() time.Time
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(products ProductStore, log zerolog.Logger) *UseCase {
	return &UseCase{products: products, now: time.Now, log: log}
}

// FormatFromFilename deduce el formato por la extensión.
func FormatFromFilename(name string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case FormatJSON, FormatXLSX, FormatCSV, FormatXML:
		return ext, nil
	}
	return "", fmt.Errorf("%w: formato de archivo no soportado %q", domain.ErrInvalidInput, filepath.Ext(name))
}

// Import lee el archivo y crea un producto por cada registro con nombre.
// Los ids del archivo se ignoran; el almacén asigna ids nuevos.
func (uc *UseCase) Import(ctx context.Context, filename string, r io.Reader, charset string) (*dto.ImportResult, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	recs, err := readRecords(format, r, charset)
	if err != nil {
		return nil, err
	}
	res, err := uc.ImportRecords(ctx, recs)
	if res != nil {
		res.Format = format
	}
	return res, err
}

// ImportRecords crea productos a partir de registros poco tipados.
func (uc *UseCase) ImportRecords(ctx context.Context, recs []map[string]any) (*dto.ImportResult, error) {
	res := &dto.ImportResult{Read: len(recs)}
	for i, rec := range recs {
		p := record.ToProduct(rec)
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			res.Skipped++
			continue
		}
		if p.Price.IsNegative() || p.Stock < 0 || p.Stock > entity.MaxStock {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("fila %d (%s): precio o stock fuera de rango", i+1, p.Name))
			continue
		}
		p.ID = 0
		p.UpdatedAt = nil
		if p.CreatedAt.IsZero() {
			p.CreatedAt = uc.now()
		}
		if err := uc.products.Create(ctx, p); err != nil {
			uc.log.Error().Err(err).Int("imported", res.Imported).Msg("importación interrumpida")
			return res, fmt.Errorf("importar fila %d: %w", i+1, err)
		}
		res.Imported++
	}
	uc.log.Info().Int("read", res.Read).Int("imported", res.Imported).Int("skipped", res.Skipped).Msg("importación completada")
	return res, nil
}

func readRecords(format string, r io.Reader, charset string) ([]map[string]any, error) {
	var (
		recs []map[string]any
		err  error
	)
	switch format {
	case FormatJSON:
		recs, err = readJSON(r)
	case FormatXLSX:
		recs, err = fileformat.ReadXLSX(r)
	case FormatCSV:
		recs, err = fileformat.ReadCSV(r, charset)
	case FormatXML:
		recs, err = fileformat.ReadProductsXML(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return recs, nil
}

func readJSON(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("el archivo debe contener un array de productos: %v", err)
	}
	recs := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		var rec map[string]any
		d := json.NewDecoder(bytes.NewReader(item))
		d.UseNumber()
		if err := d.Decode(&rec); err != nil || rec == nil {
			// elemento que no es objeto: cuenta como fila sin nombre
			rec = map[string]any{}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ExportFilename nombre de la copia de seguridad del día.
func ExportFilename(t time.Time, format string) string {
	return "antorcha-plata-backup-" + t.Format("2006-01-02") + "." + format
}

// Export escribe el catálogo completo en w y devuelve el nombre de archivo sugerido.
func (uc *UseCase) Export(ctx context.Context, format string, w io.Writer) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatXML {
		return "", fmt.Errorf("%w: formato de exportación no soportado %q", domain.ErrInvalidInput, format)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return "", err
	}
	switch format {
	case FormatXML:
		err = fileformat.WriteProductsXML(w, products)
	default:
		err = writeJSON(w, products)
	}
	if err != nil {
		return "", err
	}
	return ExportFilename(uc.now(), format), nil
}

// writeJSON escribe el array con sangría de 2 espacios y el precio como número.
func writeJSON(w io.Writer, products []*entity.Product) error {
	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		rec := record.FromProduct(p)
		rec["precio"] = json.Number(p.Price.String())
		out = append(out, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("json: escribir: %w", err)
	}
	return nil
}
