// Package domain defines the ledger types: accounts and their
// repository contract.
package domain

import (
	"errors"
	"fmt"
	"math/big"
	"time"
)

// ErrUnknownUser is returned when no account record exists for a
// username. A read failure is never masked as a zero balance.
var ErrUnknownUser = errors.New("unknown user")

// Account maps a username to its balance. Balances are
// arbitrary-precision integers, stored as decimal strings.
type Account struct {
	Username  string    `gorm:"primaryKey;type:varchar(64)" json:"username"`
	Balance   string    `gorm:"type:varchar(128);not null" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Account) TableName() string {
	return "accounts"
}

// BalanceInt parses the stored balance
func (a *Account) BalanceInt() (*big.Int, error) {
	balance, ok := new(big.Int).SetString(a.Balance, 10)
	if !ok {
		return nil, fmt.Errorf("corrupt balance %q for user %s", a.Balance, a.Username)
	}
	return balance, nil
}
