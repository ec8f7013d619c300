package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlevasseur/banque/internal/bank"
)

// The on-disk schema keeps the field names and discriminant tags of the
// historical banque.json format so existing stores keep loading.
const (
	tagStandard = "Compte"
	tagSavings  = "CompteEpargne"
	tagBusiness = "ComptePro"
)

// History operation labels of the historical format. Transfer labels embed
// the counterparty number after a fixed prefix.
const (
	opDeposit        = "dépôt"
	opWithdrawal     = "retrait"
	opInterest       = "intérêts appliqués"
	opTransferOutPfx = "virement émis vers "
	opTransferInPfx  = "virement reçu de "
)

const dateLayout = "2006-01-02T15:04:05"

// accountRecord is the persisted form of one account. The pointer fields are
// present only for the variant that owns them.
type accountRecord struct {
	Type           string          `json:"type"`
	Holder         string          `json:"titulaire"`
	Number         string          `json:"numero"`
	PasswordHash   string          `json:"mot_de_passe"`
	Balance        float64         `json:"solde"`
	History        []historyRecord `json:"historique"`
	InterestRate   *float64        `json:"taux_interet,omitempty"`
	OverdraftLimit *float64        `json:"decouvert_autorise,omitempty"`
}

type historyRecord struct {
	Date         string  `json:"date"`
	Operation    string  `json:"operation"`
	Amount       float64 `json:"montant"`
	BalanceAfter float64 `json:"solde_apres"`
}

func encodeAccount(a *bank.Account) accountRecord {
	rec := accountRecord{
		Holder:       a.Holder(),
		Number:       a.Number(),
		PasswordHash: a.PasswordHash(),
		Balance:      a.Balance(),
		History:      make([]historyRecord, 0, len(a.History())),
	}
	switch a.Kind() {
	case bank.Savings:
		rec.Type = tagSavings
		rate := a.InterestRate()
		rec.InterestRate = &rate
	case bank.Business:
		rec.Type = tagBusiness
		limit := a.OverdraftLimit()
		rec.OverdraftLimit = &limit
	default:
		rec.Type = tagStandard
	}
	for _, t := range a.History() {
		rec.History = append(rec.History, historyRecord{
			Date:         t.Date.Format(dateLayout),
			Operation:    encodeOperation(t),
			Amount:       t.Amount,
			BalanceAfter: t.BalanceAfter,
		})
	}
	return rec
}

func decodeAccount(rec accountRecord) (*bank.Account, error) {
	var kind bank.Kind
	switch rec.Type {
	case tagStandard:
		kind = bank.Standard
	case tagSavings:
		kind = bank.Savings
	case tagBusiness:
		kind = bank.Business
	default:
		return nil, fmt.Errorf("%w: unknown account type %q", ErrCorruptStore, rec.Type)
	}

	history := make([]bank.Transaction, 0, len(rec.History))
	for _, h := range rec.History {
		t, err := decodeHistory(h)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", rec.Number, err)
		}
		history = append(history, t)
	}

	var rate, overdraft float64
	if rec.InterestRate != nil {
		rate = *rec.InterestRate
	}
	if rec.OverdraftLimit != nil {
		overdraft = *rec.OverdraftLimit
	}

	a, err := bank.RestoreAccount(kind, rec.Holder, rec.Number, rec.PasswordHash, rec.Balance, history, rate, overdraft)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return a, nil
}

func encodeOperation(t bank.Transaction) string {
	switch t.Kind {
	case bank.TxDeposit:
		return opDeposit
	case bank.TxWithdrawal:
		return opWithdrawal
	case bank.TxInterest:
		return opInterest
	case bank.TxTransferOut:
		return opTransferOutPfx + t.Counterparty
	case bank.TxTransferIn:
		return opTransferInPfx + t.Counterparty
	default:
		return string(t.Kind)
	}
}

func decodeHistory(h historyRecord) (bank.Transaction, error) {
	t := bank.Transaction{
		ID:           newEntryID(),
		Amount:       h.Amount,
		BalanceAfter: h.BalanceAfter,
	}

	date, err := time.ParseInLocation(dateLayout, h.Date, time.Local)
	if err != nil {
		return t, fmt.Errorf("%w: bad history date %q", ErrCorruptStore, h.Date)
	}
	t.Date = date

	switch {
	case h.Operation == opDeposit:
		t.Kind = bank.TxDeposit
	case h.Operation == opWithdrawal:
		t.Kind = bank.TxWithdrawal
	case h.Operation == opInterest:
		t.Kind = bank.TxInterest
	case strings.HasPrefix(h.Operation, opTransferOutPfx):
		t.Kind = bank.TxTransferOut
		t.Counterparty = strings.TrimPrefix(h.Operation, opTransferOutPfx)
	case strings.HasPrefix(h.Operation, opTransferInPfx):
		t.Kind = bank.TxTransferIn
		t.Counterparty = strings.TrimPrefix(h.Operation, opTransferInPfx)
	default:
		return t, fmt.Errorf("%w: unknown operation %q", ErrCorruptStore, h.Operation)
	}
	return t, nil
}
