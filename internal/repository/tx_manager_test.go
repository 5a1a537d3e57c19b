package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTxJoinsOuterTransaction(t *testing.T) {
	outer := dryRunDB(t)
	ctx := context.WithValue(context.Background(), txKey, outer)

	// the manager's own pool is never touched when ctx already carries a tx
	tm := NewTransactionManager(nil)

	boom := errors.New("boom")
	var seen context.Context
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		seen = txCtx
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, ctx, seen)
	assert.Same(t, outer.Statement.ConnPool, GetDB(seen, nil).Statement.ConnPool)
}

func TestGetDBFallsBackToRoot(t *testing.T) {
	root := dryRunDB(t)
	assert.False(t, inTx(context.Background()))
	assert.Same(t, root.Statement.ConnPool, GetDB(context.Background(), root).Statement.ConnPool)
}
