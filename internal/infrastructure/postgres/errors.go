package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
)

// RemoteError envuelve cualquier fallo del almacenamiento remoto (red, SQL, commit).
// errors.Is(err, domain.ErrRemoteUnavailable) es verdadero, lo que dispara el
// fallback al backend local.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	if code := pgCode(e.Err); code != "" {
		return fmt.Sprintf("remoto %s (%s): %v", e.Op, code, e.Err)
	}
	return fmt.Sprintf("remoto %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Is hace que el error se clasifique como remoto no disponible.
func (e *RemoteError) Is(target error) bool {
	return target == domain.ErrRemoteUnavailable
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return err
	}
	return &RemoteError{Op: op, Err: err}
}

// pgCode devuelve el SQLSTATE si el error viene del servidor.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
