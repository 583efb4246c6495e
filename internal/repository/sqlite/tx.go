package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type txFn func(ctx context.Context, tx DBTX) error

// withTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics; a panic is
// re-raised after the rollback.
func withTx(ctx context.Context, db *sql.DB, logger logrus.FieldLogger, fn txFn) error {
	log := logger.WithField("tx_id", uuid.NewString())

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("begin transaction failed")
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.WithError(rbErr).Errorf("rollback after panic failed: %v", p)
			} else {
				log.Errorf("rolled back transaction after panic: %v", p)
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.WithError(rbErr).Error("rollback failed")
			return fmt.Errorf("rollback tx: %v (original error: %w)", rbErr, err)
		}
		log.WithError(err).Debug("rolled back transaction")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("commit failed")
		return fmt.Errorf("commit tx: %w", err)
	}
	log.Debug("committed transaction")
	return nil
}
