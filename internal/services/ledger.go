// Package services wires the bank domain to the persistence layer. Every
// operation that mutates an account's balance or the account set writes a
// full snapshot afterwards, so the store always reflects the last completed
// operation.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dlevasseur/banque/internal/bank"
	"github.com/dlevasseur/banque/internal/logging"
	"github.com/dlevasseur/banque/internal/report"
	"github.com/dlevasseur/banque/internal/store"
)

var (
	// ErrInvalidPassword is returned by Authenticate when the account exists
	// but the candidate password does not match.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrNotSavings is returned when interest is applied to an account
	// without an interest rate.
	ErrNotSavings = errors.New("not a savings account")
)

// LedgerService owns the ledger and the path of its backing store.
type LedgerService struct {
	ledger *bank.Ledger
	path   string
	logger logging.Logger
}

// NewLedgerService loads the account set from path, or starts empty when the
// store does not exist yet. A present but unreadable store is an error; it is
// better to refuse to start than to overwrite data on the first mutation.
func NewLedgerService(path string, logger logging.Logger) (*LedgerService, error) {
	ledger := bank.NewLedger()

	accounts, err := store.Load(path)
	switch {
	case err == nil:
		if err := ledger.Restore(accounts); err != nil {
			return nil, fmt.Errorf("loading store: %w", err)
		}
	case os.IsNotExist(err):
		// first run
	default:
		return nil, fmt.Errorf("loading store: %w", err)
	}

	return &LedgerService{ledger: ledger, path: path, logger: logger}, nil
}

// OpenAccountParams carries the account-creation request. InterestRate is
// read for savings accounts, OverdraftLimit for business accounts.
type OpenAccountParams struct {
	Kind           bank.Kind
	Holder         string
	Number         string
	Password       string
	InitialBalance float64
	InterestRate   float64
	OverdraftLimit float64
}

// OpenAccount creates and registers a new account, then persists.
func (s *LedgerService) OpenAccount(ctx context.Context, p OpenAccountParams) (*bank.Account, error) {
	var (
		a   *bank.Account
		err error
	)
	switch p.Kind {
	case bank.Savings:
		a, err = bank.NewSavingsAccount(p.Holder, p.Number, p.Password, p.InitialBalance, p.InterestRate)
	case bank.Business:
		a, err = bank.NewBusinessAccount(p.Holder, p.Number, p.Password, p.InitialBalance, p.OverdraftLimit)
	default:
		a, err = bank.NewAccount(p.Holder, p.Number, p.Password, p.InitialBalance)
	}
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Add(a); err != nil {
		return nil, err
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account opened", "number", a.Number(), "kind", string(a.Kind()))
	return a, nil
}

// Authenticate verifies the credentials for an account. A missing account is
// reported as bank.ErrAccountNotFound, a wrong password as ErrInvalidPassword.
func (s *LedgerService) Authenticate(ctx context.Context, number, password string) (*bank.Account, error) {
	a, ok := s.ledger.Find(number)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	if !a.VerifyPassword(password) {
		s.logger.Warn(ctx, "failed login attempt", "number", number)
		return nil, ErrInvalidPassword
	}
	return a, nil
}

// Account returns the account with the given number.
func (s *LedgerService) Account(number string) (*bank.Account, error) {
	a, ok := s.ledger.Find(number)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	return a, nil
}

// Deposit credits the account and persists. Returns the new balance.
func (s *LedgerService) Deposit(ctx context.Context, number string, amount float64) (float64, error) {
	a, ok := s.ledger.Find(number)
	if !ok {
		return 0, bank.ErrAccountNotFound
	}
	if err := a.Deposit(amount); err != nil {
		return 0, err
	}
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "deposit", "number", number, "amount", amount)
	return a.Balance(), nil
}

// Withdraw debits the account under its own policy and persists. Returns the
// new balance.
func (s *LedgerService) Withdraw(ctx context.Context, number string, amount float64) (float64, error) {
	a, ok := s.ledger.Find(number)
	if !ok {
		return 0, bank.ErrAccountNotFound
	}
	if err := a.Withdraw(amount); err != nil {
		return 0, err
	}
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "withdrawal", "number", number, "amount", amount)
	return a.Balance(), nil
}

// Transfer moves amount between two accounts with all-or-nothing effect,
// then persists.
func (s *LedgerService) Transfer(ctx context.Context, from, to string, amount float64) error {
	src, ok := s.ledger.Find(from)
	if !ok {
		return bank.ErrAccountNotFound
	}
	dst, ok := s.ledger.Find(to)
	if !ok {
		return bank.ErrAccountNotFound
	}
	if err := bank.Transfer(src, dst, amount); err != nil {
		return err
	}
	if err := s.save(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "transfer", "from", from, "to", to, "amount", amount)
	return nil
}

// ApplyInterest posts the yearly interest on a savings account and persists.
// Returns the credited amount, which may be zero.
func (s *LedgerService) ApplyInterest(ctx context.Context, number string) (float64, error) {
	a, ok := s.ledger.Find(number)
	if !ok {
		return 0, bank.ErrAccountNotFound
	}
	if a.Kind() != bank.Savings {
		return 0, ErrNotSavings
	}
	interest := a.ApplyInterest()
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "interest applied", "number", number, "amount", interest)
	return interest, nil
}

// CloseAccount deletes the account irrevocably and persists.
func (s *LedgerService) CloseAccount(ctx context.Context, number string) error {
	if err := s.ledger.Remove(number); err != nil {
		return err
	}
	if err := s.save(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "account closed", "number", number)
	return nil
}

// History returns the account's transaction history in chronological order.
func (s *LedgerService) History(number string) ([]bank.Transaction, error) {
	a, ok := s.ledger.Find(number)
	if !ok {
		return nil, bank.ErrAccountNotFound
	}
	return a.History(), nil
}

// Statement renders the account statement in the given format to w.
func (s *LedgerService) Statement(ctx context.Context, number string, format report.Format, w io.Writer) error {
	a, ok := s.ledger.Find(number)
	if !ok {
		return bank.ErrAccountNotFound
	}
	if err := report.Write(a, format, w); err != nil {
		return fmt.Errorf("rendering statement: %w", err)
	}
	s.logger.Info(ctx, "statement exported", "number", number, "format", string(format))
	return nil
}

// save writes the full snapshot. A failed save is the operation's failure:
// the in-memory change exists but must not be reported as saved.
func (s *LedgerService) save(ctx context.Context) error {
	if err := store.Save(s.path, s.ledger.Accounts()); err != nil {
		s.logger.Error(ctx, "snapshot save failed", "path", s.path, "error", err.Error())
		return err
	}
	return nil
}
