package domain

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

// BetOrderStatus defines the status of a bet order
type BetOrderStatus int

const (
	BetOrderStatusPending BetOrderStatus = 0
	BetOrderStatusSettled BetOrderStatus = 1
)

// BetOrder is the audit record of one settled deal. Amount and Payout
// are decimal strings since balances are arbitrary-precision integers.
type BetOrder struct {
	OrderID   string         `gorm:"primaryKey;type:varchar(64)" json:"order_id"`
	Username  string         `gorm:"type:varchar(64);not null;index:idx_bet_orders_username" json:"username"`
	Side      string         `gorm:"type:varchar(8);not null" json:"side"`
	Amount    string         `gorm:"type:varchar(128);not null" json:"amount"`
	Payout    string         `gorm:"type:varchar(128);not null;default:''" json:"payout"`
	Outcome   string         `gorm:"type:varchar(32);not null" json:"outcome"`
	Status    BetOrderStatus `gorm:"type:int;not null;default:0" json:"status"`
	CreatedAt time.Time      `gorm:"not null;index:idx_bet_orders_created_at" json:"created_at"`
	SettledAt *time.Time     `json:"settled_at"`
}

// TableName overrides the table name
func (BetOrder) TableName() string {
	return "bet_orders"
}

var (
	node *snowflake.Node
	once sync.Once
)

func initSnowflake() {
	var err error
	// Single-process server, a fixed node ID is enough
	node, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// NewOrderID generates a unique bet order ID
func NewOrderID() string {
	once.Do(initSnowflake)
	return node.Generate().String()
}
