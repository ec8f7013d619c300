package bank

// Ledger owns the account set and is the sole authority for account-number
// uniqueness. Accounts keep their insertion order so that persisted
// snapshots are stable across save/load cycles.
//
// The ledger is a plain value passed to whoever needs it; there is no
// package-level singleton. It performs no locking: the design assumes a
// single logical writer, and anything wrapping it with concurrent access
// must bring its own mutual exclusion.
type Ledger struct {
	accounts map[string]*Account
	order    []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Add inserts the account, rejecting a duplicate account number.
func (l *Ledger) Add(a *Account) error {
	if _, ok := l.accounts[a.Number()]; ok {
		return ErrDuplicateAccountNumber
	}
	l.accounts[a.Number()] = a
	l.order = append(l.order, a.Number())
	return nil
}

// Find looks up an account by number. Absence is a normal outcome reported
// through the boolean, never an error.
func (l *Ledger) Find(number string) (*Account, bool) {
	a, ok := l.accounts[number]
	return a, ok
}

// Remove deletes the account irrevocably, history included.
func (l *Ledger) Remove(number string) error {
	if _, ok := l.accounts[number]; !ok {
		return ErrAccountNotFound
	}
	delete(l.accounts, number)
	for i, n := range l.order {
		if n == number {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Accounts returns the accounts in insertion order.
func (l *Ledger) Accounts() []*Account {
	out := make([]*Account, 0, len(l.order))
	for _, n := range l.order {
		out = append(out, l.accounts[n])
	}
	return out
}

// Len reports the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// Restore replaces the whole account set with the given accounts, keeping
// their order. The previous contents are discarded even when the new set
// is empty; a duplicate number aborts the restore.
func (l *Ledger) Restore(accounts []*Account) error {
	next := NewLedger()
	for _, a := range accounts {
		if err := next.Add(a); err != nil {
			return err
		}
	}
	*l = *next
	return nil
}
