// internal/service/tx.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"
)

// finishTx is the shared commit/rollback epilogue for service-owned
// transactions. Call it deferred with the method's named error: a nil error
// commits, anything else rolls back. Panics roll back and re-raise so the
// recover middleware can turn them into 500s.
func finishTx(ctx context.Context, tx pgx.Tx, errp *error) {
	if p := recover(); p != nil {
		zlog.Error().Msgf("Service: panic recovered inside transaction: %v", p)
		_ = tx.Rollback(ctx)
		panic(p)
	}
	if *errp != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zlog.Error().Err(rbErr).Msg("Service: failed to rollback transaction")
		}
		return
	}
	if cmErr := tx.Commit(ctx); cmErr != nil {
		zlog.Error().Err(cmErr).Msg("Service: failed to commit transaction")
		*errp = fmt.Errorf("internal server error: could not finalize operation")
	}
}
