package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/fileformat"
)

type memProducts struct {
	items  []*entity.Product
	failAt int
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	if m.failAt > 0 && len(m.items)+1 == m.failAt {
		return errors.New("almacén caído")
	}
	p.ID = int64(len(m.items) + 1)
	m.items = append(m.items, p)
	return nil
}

func (m *memProducts) List(context.Context) ([]*entity.Product, error) { return m.items, nil }

var today = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(store *memProducts) *UseCase {
	uc := NewUseCase(store, zerolog.Nop())
	uc.now = func() time.Time { return today }
	return uc
}

func TestFormatFromFilename(t *testing.T) {
	f, err := FormatFromFilename("listado_productos.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = FormatFromFilename("notas.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportJSON(t *testing.T) {
	store := &memProducts{}
	in := `[
		{"id": 40, "nombre": "Vela", "precio": "12.50", "stock": 4, "categoria": "Hogar"},
		{"nombre": "", "precio": 3},
		{"categoria": "sin nombre"},
		"texto suelto",
		{"nombre": "Jabón", "precio": 6, "stock": "2 unidades", "createdAt": "2024-01-02T03:04:05Z"},
		{"nombre": "Roto", "precio": -1}
	]`
	res, err := newUseCase(store).Import(context.Background(), "backup.json", strings.NewReader(in), "")
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, res.Format)
	assert.Equal(t, 6, res.Read)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 4, res.Skipped)
	assert.Len(t, res.Errors, 1)

	require.Len(t, store.items, 2)
	vela := store.items[0]
	assert.Equal(t, int64(1), vela.ID)
	assert.True(t, vela.Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 4, vela.Stock)
	assert.True(t, vela.CreatedAt.Equal(today))

	jabon := store.items[1]
	assert.Equal(t, 2, jabon.Stock)
	assert.Equal(t, 2024, jabon.CreatedAt.Year())
}

func TestImportJSON_ValoresFueraDeRango(t *testing.T) {
	store := &memProducts{}
	in := `[
		{"nombre": "Gigante", "precio": 1, "stock": 3000000000},
		{"nombre": "Exponente", "precio": 1e1000000000, "stock": 2}
	]`
	res, err := newUseCase(store).Import(context.Background(), "backup.json", strings.NewReader(in), "")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, store.items, 1)
	assert.Equal(t, "Exponente", store.items[0].Name)
	assert.True(t, store.items[0].Price.IsZero())
}

func TestImportJSON_NoEsArray(t *testing.T) {
	_, err := newUseCase(&memProducts{}).Import(context.Background(), "x.json", strings.NewReader(`{"nombre":"Vela"}`), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fileformat.WriteXLSX(&buf, []map[string]any{
		{"nombre": "Pulsera", "precio": "24.9", "stock": 3, "codigo": "P-1"},
		{"codigo": "vacía"},
	}))
	store := &memProducts{}
	res, err := newUseCase(store).Import(context.Background(), "listado_productos.xlsx", &buf, "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "N/A", store.items[0].Size)
	assert.Equal(t, "P-1", store.items[0].Code)
}

func TestImportCSV_Latin1(t *testing.T) {
	in := "Nombre del Producto;PVP (€)\nCollar\xf1;30\n"
	store := &memProducts{}
	res, err := newUseCase(store).Import(context.Background(), "stock.csv", strings.NewReader(in), "latin1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, "Collarñ", store.items[0].Name)
}

func TestImport_ErrorDelAlmacen(t *testing.T) {
	store := &memProducts{failAt: 2}
	in := `[{"nombre":"a"},{"nombre":"b"},{"nombre":"c"}]`
	res, err := newUseCase(store).Import(context.Background(), "x.json", strings.NewReader(in), "")
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Imported)
}

func TestExportJSON(t *testing.T) {
	store := &memProducts{items: []*entity.Product{
		{ID: 1, Name: "Vela", Price: decimal.RequireFromString("12.50"), Stock: 4, CreatedAt: today},
	}}
	var buf bytes.Buffer
	name, err := newUseCase(store).Export(context.Background(), "", &buf)
	require.NoError(t, err)
	assert.Equal(t, "antorcha-plata-backup-2024-06-10.json", name)
	assert.Contains(t, buf.String(), "\n  {\n    \"categoria\"")
	assert.Contains(t, buf.String(), `"precio": 12.5`)

	var back []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, "Vela", back[0]["nombre"])

	// la copia se puede volver a importar
	other := &memProducts{}
	res, err := newUseCase(other).Import(context.Background(), name, bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.True(t, other.items[0].Price.Equal(decimal.RequireFromString("12.5")))
}

func TestExportXML(t *testing.T) {
	store := &memProducts{items: []*entity.Product{{ID: 1, Name: "Vela", Price: decimal.NewFromInt(3)}}}
	var buf bytes.Buffer
	name, err := newUseCase(store).Export(context.Background(), "XML", &buf)
	require.NoError(t, err)
	assert.Equal(t, "antorcha-plata-backup-2024-06-10.xml", name)
	assert.Contains(t, buf.String(), `<producto id="1" nombre="Vela"`)
}

func TestExport_FormatoNoSoportado(t *testing.T) {
	_, err := newUseCase(&memProducts{}).Export(context.Background(), "xlsx", &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
