package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
)

func TestSelectSQL_FiltrosOrdenYBloqueo(t *testing.T) {
	tbl := Table{Name: "ventas"}
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Millisecond)

	sql, args := tbl.selectSQL(Select{
		Eq:       map[string]any{"tipo": "venta", "productoId": int64(3)},
		RangeKey: "fecha", From: from, To: to,
		OrderKey: "fecha", Desc: true,
	})
	assert.Equal(t,
		`SELECT * FROM "ventas" WHERE "producto_id" = $1 AND "tipo" = $2 AND "fecha" BETWEEN $3 AND $4 ORDER BY "fecha" DESC, id DESC`,
		sql)
	assert.Equal(t, []any{int64(3), "venta", from, to}, args)

	sql, args = Table{Name: "productos"}.selectSQL(Select{Eq: map[string]any{"id": int64(7)}, ForUpdate: true})
	assert.Equal(t, `SELECT * FROM "productos" WHERE "id" = $1 FOR UPDATE`, sql)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestInsertSQL_TraduceClavesYOmiteID(t *testing.T) {
	sql, args := Table{Name: "caja"}.insertSQL(map[string]any{
		"id": int64(9), "tipo": "ingreso", "ventaId": int64(4), "metodoPago": "tarjeta",
	})
	assert.Equal(t, `INSERT INTO "caja" ("metodo_pago", "tipo", "venta_id") VALUES ($1, $2, $3) RETURNING *`, sql)
	assert.Equal(t, []any{"tarjeta", "ingreso", int64(4)}, args)
}

func TestUpdateSQL(t *testing.T) {
	sql, args, ok := Table{Name: "productos"}.updateSQL(5, map[string]any{"stock": 3, "id": int64(5)})
	require.True(t, ok)
	assert.Equal(t, `UPDATE "productos" SET "stock" = $1 WHERE id = $2`, sql)
	assert.Equal(t, []any{3, int64(5)}, args)

	_, _, ok = Table{Name: "productos"}.updateSQL(5, map[string]any{"id": int64(5)})
	assert.False(t, ok)
}

func TestRemoteError_EsRemotoNoDisponible(t *testing.T) {
	err := wrap("productos.select", &pgconn.PgError{Code: "42P01", Message: "relation does not exist"})
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "42P01")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))

	outer := fmt.Errorf("listar: %w", err)
	assert.ErrorIs(t, outer, domain.ErrRemoteUnavailable)
	assert.Same(t, err, wrap("otra", err))
	assert.NoError(t, wrap("nada", nil))
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
