package local

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// querier abstrae "base completa" o "transacción abierta", igual que el
// Querier del backend remoto acepta pool o tx.
type querier interface {
	view(fn func(txn *badger.Txn) error) error
	update(fn func(txn *badger.Txn) error) error
}

type dbQuerier struct{ db *badger.DB }

func (q dbQuerier) view(fn func(txn *badger.Txn) error) error { return q.db.View(fn) }

func (q dbQuerier) update(fn func(txn *badger.Txn) error) error {
	return mapConflict(q.db.Update(fn))
}

type txnQuerier struct{ txn *badger.Txn }

func (q txnQuerier) view(fn func(txn *badger.Txn) error) error   { return fn(q.txn) }
func (q txnQuerier) update(fn func(txn *badger.Txn) error) error { return fn(q.txn) }

// table resuelve claves e ids de una tabla.
type table struct {
	name string
	seq  *badger.Sequence
}

func (t table) key(id int64) []byte {
	return []byte(fmt.Sprintf("%s/%020d", t.name, id))
}

func (t table) prefix() []byte {
	return []byte(t.name + "/")
}

func (t table) nextID() (int64, error) {
	n, err := t.seq.Next()
	if err != nil {
		return 0, fmt.Errorf("local: siguiente id de %s: %w", t.name, err)
	}
	return int64(n) + 1, nil
}

// get devuelve (nil, nil) si la clave no existe.
func (t table) get(txn *badger.Txn, id int64) (map[string]any, error) {
	item, err := txn.Get(t.key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("local: leer %s/%d: %w", t.name, id, err)
	}
	var row map[string]any
	err = item.Value(func(val []byte) error {
		row, err = decode(val)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("local: decodificar %s/%d: %w", t.name, id, err)
	}
	return row, nil
}

func (t table) put(txn *badger.Txn, id int64, row map[string]any) error {
	val, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("local: codificar %s/%d: %w", t.name, id, err)
	}
	if err := txn.Set(t.key(id), val); err != nil {
		return fmt.Errorf("local: escribir %s/%d: %w", t.name, id, err)
	}
	return nil
}

func (t table) delete(txn *badger.Txn, id int64) error {
	if err := txn.Delete(t.key(id)); err != nil {
		return fmt.Errorf("local: eliminar %s/%d: %w", t.name, id, err)
	}
	return nil
}

// scan recorre todos los registros de la tabla.
func (t table) scan(txn *badger.Txn, fn func(row map[string]any) error) error {
	prefix := t.prefix()
	it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, PrefetchSize: 100, Prefix: prefix})
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("local: recorrer %s: %w", t.name, err)
		}
		row, err := decode(val)
		if err != nil {
			return fmt.Errorf("local: decodificar %s: %w", t.name, err)
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// decode conserva los números como json.Number para no perder precisión en montos.
func decode(val []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(val))
	dec.UseNumber()
	var row map[string]any
	if err := dec.Decode(&row); err != nil {
		return nil, err
	}
	return row, nil
}
