// Package store persists the full account set as one JSON document: an array
// of tagged records, one per account, with a discriminant field naming the
// concrete variant so load can rebuild the right type.
//
// Saving is a full snapshot rewrite through a temporary file renamed over the
// target, so a crash mid-write never leaves a truncated store behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlevasseur/banque/internal/bank"
	"github.com/google/uuid"
)

// ErrCorruptStore marks a store that cannot be decoded: invalid JSON, an
// unknown discriminant tag, or an unreadable history entry. Match with
// errors.Is.
var ErrCorruptStore = errors.New("corrupt account store")

// newEntryID assigns IDs to history entries on load; the on-disk format
// predates entry IDs and does not carry them.
var newEntryID = uuid.NewString

// Save writes the accounts to path as one indented JSON array, replacing any
// previous content atomically.
func Save(path string, accounts []*bank.Account) error {
	records := make([]accountRecord, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, encodeAccount(a))
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

// Load reads the whole account set from path. The result replaces, never
// merges with, whatever the caller held before. A missing file is reported
// as-is (os.IsNotExist) so callers can start from an empty ledger; anything
// unreadable inside the document wraps ErrCorruptStore.
func Load(path string) ([]*bank.Account, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var records []accountRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	accounts := make([]*bank.Account, 0, len(records))
	for _, rec := range records {
		a, err := decodeAccount(rec)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
