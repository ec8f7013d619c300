package bank

// Transfer moves amount from src to dst with all-or-nothing effect.
//
// The operation is composed from a debit and a credit rather than being a
// single primitive: the debit runs under src's own withdrawal policy and
// yields an undo closure; if the credit then fails, the undo restores src
// before the error is reported, so the combined balance of the two accounts
// never changes on a failed transfer.
//
// On success each account gets its own history entry (transfer-out on src,
// transfer-in on dst) sharing the same amount and timestamp but recording
// the peer's account number from its own perspective.
func Transfer(src, dst *Account, amount float64) error {
	if src.Number() == dst.Number() {
		return ErrSameAccountTransfer
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	at := now()
	undo, err := src.debit(amount, TxTransferOut, dst.Number(), at)
	if err != nil {
		return err
	}
	if err := dst.credit(amount, TxTransferIn, src.Number(), at); err != nil {
		undo()
		return err
	}
	return nil
}
