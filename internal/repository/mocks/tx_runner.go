package mocks

import (
	"context"

	"marauder-server/internal/repository"
)

// TxRunner invokes the callback directly, без реальной транзакции.
type TxRunner struct {
	// Err, когда задан, возвращается вместо выполнения callback.
	Err error
}

func (t *TxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.DBTX) error) error {
	if t.Err != nil {
		return t.Err
	}
	return fn(ctx, nil)
}
