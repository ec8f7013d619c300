package bank

import (
	"fmt"
	"time"
)

// TxKind classifies a history entry.
type TxKind string

const (
	TxDeposit     TxKind = "deposit"
	TxWithdrawal  TxKind = "withdrawal"
	TxTransferOut TxKind = "transfer-out"
	TxTransferIn  TxKind = "transfer-in"
	TxInterest    TxKind = "interest"
)

// Transaction is a single immutable history entry. Amount is always the
// positive magnitude of the movement; BalanceAfter is the balance snapshot
// taken right after the entry was posted. Counterparty is set only for
// transfer entries and holds the peer account number.
type Transaction struct {
	ID           string
	Date         time.Time
	Kind         TxKind
	Counterparty string
	Amount       float64
	BalanceAfter float64
}

// Label renders a human-readable description of the entry, e.g.
// "transfer to B042" for a transfer-out entry.
func (t Transaction) Label() string {
	switch t.Kind {
	case TxTransferOut:
		return fmt.Sprintf("transfer to %s", t.Counterparty)
	case TxTransferIn:
		return fmt.Sprintf("transfer from %s", t.Counterparty)
	default:
		return string(t.Kind)
	}
}
