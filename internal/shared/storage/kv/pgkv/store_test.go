package pgkv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Store{DB: db}, mock
}

func TestPGStoreGetItem(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"1"}]`)
	mock.ExpectQuery(`SELECT value FROM kv_entries WHERE key = \$1`).
		WithArgs("history").
		WillReturnRows(rows)

	value, ok, err := store.GetItem(context.Background(), "history")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != `[{"id":"1"}]` {
		t.Fatalf("unexpected result: value=%q ok=%v", value, ok)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreGetItemAbsent(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries WHERE key = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, ok, err := store.GetItem(context.Background(), "missing")
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for absent key")
	}
}

func TestPGStoreGetItemQueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries WHERE key = \$1`).
		WithArgs("history").
		WillReturnError(errors.New("connection reset"))

	if _, _, err := store.GetItem(context.Background(), "history"); err == nil {
		t.Fatal("expected query error surfaced")
	}
}

func TestPGStoreSetItemUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO kv_entries`).
		WithArgs("history", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.SetItem(context.Background(), "history", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreRemoveItem(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM kv_entries WHERE key = \$1`).
		WithArgs("history").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.RemoveItem(context.Background(), "history"); err != nil {
		t.Fatalf("removing absent key must succeed: %v", err)
	}
}
