package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/domain"
)

func (a *App) PaymentAccounts() []domain.PaymentAccount {
	return append([]domain.PaymentAccount(nil), a.accounts...)
}

func (a *App) PaymentRecords() []domain.PaymentRecord {
	return append([]domain.PaymentRecord(nil), a.seed.PaymentRecords...)
}

func (a *App) PaymentStats() domain.PaymentStats { return a.seed.PaymentStats }

// SaveAccount adds a payout account when editingID is empty, otherwise it
// updates type, name and account info in place. The first account added to
// an empty list becomes the default.
func (a *App) SaveAccount(editingID string, in domain.AccountInput) (domain.PaymentAccount, error) {
	if err := a.requireProfile("save account"); err != nil {
		return domain.PaymentAccount{}, err
	}
	if err := domain.ValidateAccount(in); err != nil {
		return domain.PaymentAccount{}, a.rejected("save account", err)
	}
	if editingID == "" {
		acc := domain.PaymentAccount{
			ID:          a.newID(),
			Type:        domain.AccountType(in.Type),
			Name:        in.Name,
			AccountInfo: in.AccountInfo,
			IsDefault:   len(a.accounts) == 0,
		}
		a.accounts = append(a.accounts, acc)
		a.log.Info("payment account added", zap.String("account", acc.ID))
		return acc, nil
	}
	idx := a.accountIndex(editingID)
	if idx < 0 {
		return domain.PaymentAccount{}, fmt.Errorf("save account %s: %w", editingID, domain.ErrAccountNotFound)
	}
	acc := a.accounts[idx]
	acc.Type = domain.AccountType(in.Type)
	acc.Name = in.Name
	acc.AccountInfo = in.AccountInfo
	a.accounts[idx] = acc
	a.log.Info("payment account updated", zap.String("account", acc.ID))
	return acc, nil
}

func (a *App) DeleteAccount(id string) error {
	if err := a.requireProfile("delete account"); err != nil {
		return err
	}
	idx := a.accountIndex(id)
	if idx < 0 {
		return fmt.Errorf("delete account %s: %w", id, domain.ErrAccountNotFound)
	}
	a.accounts = append(a.accounts[:idx:idx], a.accounts[idx+1:]...)
	a.log.Info("payment account deleted", zap.String("account", id))
	return nil
}

// SetDefaultAccount leaves exactly one default account.
func (a *App) SetDefaultAccount(id string) error {
	if err := a.requireProfile("set default account"); err != nil {
		return err
	}
	if a.accountIndex(id) < 0 {
		return fmt.Errorf("set default account %s: %w", id, domain.ErrAccountNotFound)
	}
	for i := range a.accounts {
		a.accounts[i].IsDefault = a.accounts[i].ID == id
	}
	a.log.Info("default payment account changed", zap.String("account", id))
	return nil
}

func (a *App) accountIndex(id string) int {
	for i, acc := range a.accounts {
		if acc.ID == id {
			return i
		}
	}
	return -1
}
