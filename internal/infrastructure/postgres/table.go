package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/antorcha-inventario/pkg/naming"
)

// Table cliente genérico de una tabla remota. Recibe y devuelve registros con
// claves camelCase; la traducción a columnas snake_case ocurre solo aquí.
type Table struct {
	Name string
}

// Select filtros de una lectura. Las claves van en camelCase.
type Select struct {
	Eq        map[string]any
	RangeKey  string // columna de tiempo para [From, To], ambos inclusivos
	From, To  time.Time
	OrderKey  string
	Desc      bool
	ForUpdate bool
}

// Find ejecuta la lectura y devuelve los registros en camelCase.
func (t Table) Find(ctx context.Context, q Querier, sel Select) ([]map[string]any, error) {
	sql, args := t.selectSQL(sel)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrap(t.Name+".select", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, wrap(t.Name+".select", err)
	}
	out := make([]map[string]any, len(list))
	for i, row := range list {
		out[i] = naming.CamelMap(row)
	}
	return out, nil
}

// FindOne devuelve (nil, nil) si no hay fila.
func (t Table) FindOne(ctx context.Context, q Querier, sel Select) (map[string]any, error) {
	list, err := t.Find(ctx, q, sel)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// Insert inserta el registro (sin id) y devuelve la fila creada.
func (t Table) Insert(ctx context.Context, q Querier, record map[string]any) (map[string]any, error) {
	sql, args := t.insertSQL(record)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrap(t.Name+".insert", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, wrap(t.Name+".insert", err)
	}
	return naming.CamelMap(row), nil
}

// Update modifica las columnas del registro en la fila id. Devuelve si la fila existía.
func (t Table) Update(ctx context.Context, q Querier, id int64, record map[string]any) (bool, error) {
	sql, args, ok := t.updateSQL(id, record)
	if !ok {
		return false, errors.New("update sin columnas")
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, wrap(t.Name+".update", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina la fila id; no falla si no existe.
func (t Table) Delete(ctx context.Context, q Querier, id int64) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1", ident(t.Name))
	if _, err := q.Exec(ctx, sql, id); err != nil {
		return wrap(t.Name+".delete", err)
	}
	return nil
}

func (t Table) selectSQL(sel Select) (string, []any) {
	var (
		b     strings.Builder
		args  []any
		conds []string
	)
	fmt.Fprintf(&b, "SELECT * FROM %s", ident(t.Name))
	for _, key := range sortedKeys(sel.Eq) {
		args = append(args, sel.Eq[key])
		conds = append(conds, fmt.Sprintf("%s = $%d", column(key), len(args)))
	}
	if sel.RangeKey != "" {
		args = append(args, sel.From, sel.To)
		conds = append(conds, fmt.Sprintf("%s BETWEEN $%d AND $%d", column(sel.RangeKey), len(args)-1, len(args)))
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	if sel.OrderKey != "" {
		dir := "ASC"
		if sel.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s, id %s", column(sel.OrderKey), dir, dir)
	}
	if sel.ForUpdate {
		b.WriteString(" FOR UPDATE")
	}
	return b.String(), args
}

func (t Table) insertSQL(record map[string]any) (string, []any) {
	row := naming.SnakeMap(record)
	delete(row, "id")
	keys := sortedKeys(row)
	cols := make([]string, len(keys))
	marks := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		cols[i] = ident(k)
		marks[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[k]
	}
	if len(keys) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING *", ident(t.Name)), nil
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		ident(t.Name), strings.Join(cols, ", "), strings.Join(marks, ", ")), args
}

func (t Table) updateSQL(id int64, record map[string]any) (string, []any, bool) {
	row := naming.SnakeMap(record)
	delete(row, "id")
	keys := sortedKeys(row)
	if len(keys) == 0 {
		return "", nil, false
	}
	sets := make([]string, len(keys))
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		args = append(args, row[k])
		sets[i] = fmt.Sprintf("%s = $%d", ident(k), i+1)
	}
	args = append(args, id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		ident(t.Name), strings.Join(sets, ", "), len(args)), args, true
}

func column(camelKey string) string {
	return ident(naming.ToSnake(camelKey))
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
