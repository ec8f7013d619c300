package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer_MovesFundsAndPostsBothEntries(t *testing.T) {
	src := mustStandard(t, "A001", 100)
	dst, err := NewBusinessAccount("Bob SARL", "A002", "pw", 0, 50)
	require.NoError(t, err)

	require.NoError(t, Transfer(src, dst, 80))

	assert.Equal(t, 20.0, src.Balance())
	assert.Equal(t, 80.0, dst.Balance())

	sh := src.History()
	dh := dst.History()
	require.Len(t, sh, 1)
	require.Len(t, dh, 1)

	assert.Equal(t, TxTransferOut, sh[0].Kind)
	assert.Equal(t, "A002", sh[0].Counterparty)
	assert.Equal(t, 80.0, sh[0].Amount)
	assert.Equal(t, 20.0, sh[0].BalanceAfter)

	assert.Equal(t, TxTransferIn, dh[0].Kind)
	assert.Equal(t, "A001", dh[0].Counterparty)
	assert.Equal(t, 80.0, dh[0].Amount)
	assert.Equal(t, 80.0, dh[0].BalanceAfter)

	// distinct entries sharing one timestamp
	assert.Equal(t, sh[0].Date, dh[0].Date)
	assert.NotEqual(t, sh[0].ID, dh[0].ID)
}

func TestTransfer_InsufficientFundsIsNoOp(t *testing.T) {
	src := mustStandard(t, "A001", 100)
	dst, err := NewBusinessAccount("Bob SARL", "A002", "pw", 0, 50)
	require.NoError(t, err)

	err = Transfer(src, dst, 120)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.Equal(t, 100.0, src.Balance())
	assert.Equal(t, 0.0, dst.Balance())
	assert.Empty(t, src.History())
	assert.Empty(t, dst.History())
}

func TestTransfer_SameAccountRejected(t *testing.T) {
	a := mustStandard(t, "A001", 100)
	b := mustStandard(t, "A001", 100) // same number, different object

	assert.ErrorIs(t, Transfer(a, a, 10), ErrSameAccountTransfer)
	assert.ErrorIs(t, Transfer(a, b, 10), ErrSameAccountTransfer)
	assert.Equal(t, 100.0, a.Balance())
}

func TestTransfer_RejectsNonPositiveAmount(t *testing.T) {
	src := mustStandard(t, "A001", 100)
	dst := mustStandard(t, "A002", 0)

	assert.ErrorIs(t, Transfer(src, dst, 0), ErrInvalidAmount)
	assert.ErrorIs(t, Transfer(src, dst, -10), ErrInvalidAmount)
	assert.Equal(t, 100.0, src.Balance())
	assert.Equal(t, 0.0, dst.Balance())
}

func TestTransfer_SourcePolicyApplies(t *testing.T) {
	src, err := NewBusinessAccount("Bob SARL", "B001", "pw", 0, 50)
	require.NoError(t, err)
	dst := mustStandard(t, "A001", 0)

	// the business overdraft funds the transfer
	require.NoError(t, Transfer(src, dst, 40))
	assert.Equal(t, -40.0, src.Balance())
	assert.Equal(t, 40.0, dst.Balance())

	// beyond the overdraft the transfer fails with the business error
	err = Transfer(src, dst, 20)
	assert.ErrorIs(t, err, ErrOverdraftExceeded)
	assert.Equal(t, -40.0, src.Balance())
	assert.Equal(t, 40.0, dst.Balance())
}

func TestTransfer_ConservesTotalBalance(t *testing.T) {
	withNow(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local))

	x := mustStandard(t, "X", 300)
	y, err := NewSavingsAccount("Yvonne", "Y", "pw", 120, 0.01)
	require.NoError(t, err)
	z, err := NewBusinessAccount("Zed SARL", "Z", "pw", 0, 100)
	require.NoError(t, err)

	total := func() float64 { return x.Balance() + y.Balance() + z.Balance() }
	before := total()

	require.NoError(t, Transfer(x, y, 125.5))
	require.NoError(t, Transfer(y, z, 200))
	require.NoError(t, Transfer(z, x, 80.25))
	assert.Error(t, Transfer(z, x, 10_000)) // failed transfer changes nothing

	assert.InDelta(t, before, total(), 1e-9)
}
