// internal/service/tx_stub_test.go
package service

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// stubTx satisfies pgx.Tx for service tests. Only Commit and Rollback are
// implemented; everything else panics through the embedded nil interface,
// which is fine because repositories are mocked.
type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type stubBeginner struct {
	tx *stubTx
}

func (b *stubBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	return b.tx, nil
}

func newStubDB() (*stubBeginner, *stubTx) {
	tx := &stubTx{}
	return &stubBeginner{tx: tx}, tx
}
