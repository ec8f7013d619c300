// Package bank implements the account-and-ledger domain: account variants,
// the transfer protocol with rollback, hashed-password verification, and the
// ledger that owns the account set.
//
// The three account variants (standard, savings, business) share one concrete
// type carrying a Kind discriminant; the withdrawal policy is resolved on the
// Kind at dispatch time. Amounts are float64 in the account's currency unit;
// history entries round amounts and balance snapshots to two decimals.
package bank

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// now is a test seam for timestamp generation.
var now = time.Now

// Kind discriminates the account variants.
type Kind string

const (
	Standard Kind = "standard"
	Savings  Kind = "savings"
	Business Kind = "business"
)

// Account is one bank account. All fields are unexported: balance and history
// change only through the operation methods, and the password digest is never
// exposed except through PasswordHash for persistence.
type Account struct {
	holder       string
	number       string
	passwordHash string
	balance      float64
	history      []Transaction
	kind         Kind

	interestRate   float64 // savings only
	overdraftLimit float64 // business only
}

// NewAccount opens a standard account. The password is hashed immediately;
// the plaintext is not retained.
func NewAccount(holder, number, password string, initial float64) (*Account, error) {
	return newAccount(Standard, holder, number, password, initial, 0, 0)
}

// NewSavingsAccount opens a savings account with the given yearly interest
// rate expressed as a fraction (0.02 = 2%).
func NewSavingsAccount(holder, number, password string, initial, rate float64) (*Account, error) {
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("%w: interest rate must be between 0 and 1", ErrInvalidAccount)
	}
	return newAccount(Savings, holder, number, password, initial, rate, 0)
}

// NewBusinessAccount opens a business account whose balance may go below
// zero down to the negated overdraft limit.
func NewBusinessAccount(holder, number, password string, initial, overdraft float64) (*Account, error) {
	if overdraft < 0 {
		return nil, fmt.Errorf("%w: overdraft limit must not be negative", ErrInvalidAccount)
	}
	return newAccount(Business, holder, number, password, initial, 0, overdraft)
}

func newAccount(kind Kind, holder, number, password string, initial, rate, overdraft float64) (*Account, error) {
	holder = strings.TrimSpace(holder)
	number = strings.TrimSpace(number)
	if holder == "" {
		return nil, fmt.Errorf("%w: holder name must not be empty", ErrInvalidAccount)
	}
	if number == "" {
		return nil, fmt.Errorf("%w: account number must not be empty", ErrInvalidAccount)
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: password must not be empty", ErrInvalidAccount)
	}
	return &Account{
		holder:         holder,
		number:         number,
		passwordHash:   HashPassword(password),
		balance:        initial,
		kind:           kind,
		interestRate:   rate,
		overdraftLimit: overdraft,
	}, nil
}

// RestoreAccount rebuilds an account from persisted state. The password is
// supplied as an already-computed digest and the history is adopted as-is;
// this is the entry point for the persistence codec only.
func RestoreAccount(kind Kind, holder, number, passwordHash string, balance float64, history []Transaction, rate, overdraft float64) (*Account, error) {
	switch kind {
	case Standard, Savings, Business:
	default:
		return nil, fmt.Errorf("%w: unknown account kind %q", ErrInvalidAccount, kind)
	}
	if holder == "" || number == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: missing holder, number or password digest", ErrInvalidAccount)
	}
	return &Account{
		holder:         holder,
		number:         number,
		passwordHash:   passwordHash,
		balance:        balance,
		history:        history,
		kind:           kind,
		interestRate:   rate,
		overdraftLimit: overdraft,
	}, nil
}

func (a *Account) Holder() string  { return a.holder }
func (a *Account) Number() string  { return a.number }
func (a *Account) Balance() float64 { return a.balance }
func (a *Account) Kind() Kind      { return a.kind }

// InterestRate is meaningful for savings accounts; zero otherwise.
func (a *Account) InterestRate() float64 { return a.interestRate }

// OverdraftLimit is meaningful for business accounts; zero otherwise.
func (a *Account) OverdraftLimit() float64 { return a.overdraftLimit }

// PasswordHash returns the stored hex digest. It exists for the persistence
// codec; authentication goes through VerifyPassword.
func (a *Account) PasswordHash() string { return a.passwordHash }

// History returns a copy of the transaction history in chronological order.
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Deposit credits the account. The amount must be strictly positive.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return a.credit(amount, TxDeposit, "", now())
}

// Withdraw debits the account under the variant's policy: standard and
// savings accounts may not go below zero, business accounts may not go
// below the negated overdraft limit.
func (a *Account) Withdraw(amount float64) error {
	_, err := a.debit(amount, TxWithdrawal, "", now())
	return err
}

// ApplyInterest posts balance*rate as an interest entry and returns the
// credited amount. A zero or negative computed interest is clamped to a
// zero-amount entry; applying interest is never an error.
func (a *Account) ApplyInterest() float64 {
	interest := round2(a.balance * a.interestRate)
	if interest < 0 {
		interest = 0
	}
	_ = a.credit(interest, TxInterest, "", now())
	return interest
}

// VerifyPassword reports whether candidate hashes to the stored digest.
// The comparison is constant-time over the two digests.
func (a *Account) VerifyPassword(candidate string) bool {
	digest := HashPassword(candidate)
	return subtle.ConstantTimeCompare([]byte(a.passwordHash), []byte(digest)) == 1
}

// credit adds amount and posts an entry. Only interest entries may carry a
// zero amount.
func (a *Account) credit(amount float64, kind TxKind, counterparty string, at time.Time) error {
	if amount < 0 || (amount == 0 && kind != TxInterest) {
		return ErrInvalidAmount
	}
	a.balance += amount
	a.post(kind, amount, counterparty, at)
	return nil
}

// debit applies the variant's withdrawal policy and, on success, returns an
// undo function restoring balance and history to the pre-debit state. The
// undo closure is what makes the transfer rollback explicit.
func (a *Account) debit(amount float64, kind TxKind, counterparty string, at time.Time) (func(), error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if a.balance-amount < -a.overdraft() {
		if a.kind == Business {
			return nil, ErrOverdraftExceeded
		}
		return nil, ErrInsufficientFunds
	}
	prevBalance := a.balance
	prevLen := len(a.history)
	a.balance -= amount
	a.post(kind, amount, counterparty, at)
	return func() {
		a.balance = prevBalance
		a.history = a.history[:prevLen]
	}, nil
}

func (a *Account) overdraft() float64 {
	if a.kind == Business {
		return a.overdraftLimit
	}
	return 0
}

func (a *Account) post(kind TxKind, amount float64, counterparty string, at time.Time) {
	a.history = append(a.history, Transaction{
		ID:           uuid.NewString(),
		Date:         at.Truncate(time.Second),
		Kind:         kind,
		Counterparty: counterparty,
		Amount:       round2(amount),
		BalanceAfter: round2(a.balance),
	})
}

// HashPassword returns the hex-encoded SHA-256 digest of the plaintext.
// The store format depends on this exact digest shape.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
