package fileformat

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

// WriteProductsXML escribe <productos><producto .../></productos>, un
// elemento por producto con sus campos como atributos.
func WriteProductsXML(w io.Writer, products []*entity.Product) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(tableName)
	root.CreateAttr("total", strconv.Itoa(len(products)))

	for _, p := range products {
		el := root.CreateElement("producto")
		el.CreateAttr("id", strconv.FormatInt(p.ID, 10))
		el.CreateAttr("nombre", p.Name)
		el.CreateAttr("categoria", p.Category)
		el.CreateAttr("precio", p.Price.String())
		el.CreateAttr("stock", strconv.Itoa(p.Stock))
		optionalAttr(el, "codigo", p.Code)
		optionalAttr(el, "tamano", p.Size)
		optionalAttr(el, "coleccion", p.Collection)
		optionalAttr(el, "imagen", p.Image)
		if !p.CreatedAt.IsZero() {
			el.CreateAttr("createdAt", p.CreatedAt.UTC().Format(time.RFC3339Nano))
		}
		if p.UpdatedAt != nil {
			el.CreateAttr("updatedAt", p.UpdatedAt.UTC().Format(time.RFC3339Nano))
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("xml: escribir: %w", err)
	}
	return nil
}

// ReadProductsXML lee el formato de WriteProductsXML. Los atributos
// desconocidos se ignoran.
func ReadProductsXML(r io.Reader) ([]map[string]any, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xml: leer: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != tableName {
		return nil, fmt.Errorf("xml: se esperaba el elemento raíz <%s>", tableName)
	}
	items := root.SelectElements("producto")
	out := make([]map[string]any, 0, len(items))
	for _, el := range items {
		rec := make(map[string]any, len(el.Attr))
		for _, a := range el.Attr {
			if key := ColumnKey(a.Key); key != "" {
				rec[key] = a.Value
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func optionalAttr(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}
