package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Order statuses. The machine is one-way: pending -> confirmed -> in_progress -> completed.
const (
	OrderStatusPending    string = "pending"
	OrderStatusConfirmed  string = "confirmed"
	OrderStatusInProgress string = "in_progress"
	OrderStatusCompleted  string = "completed"
)

// Reward kinds a user may select when submitting waste.
const (
	RewardKindCash      string = "cash"
	RewardKindEcoPoints string = "eco_points"
	RewardKindGiftCard  string = "gift_card"
)

// PickupOrder is the transactional record spanning waste submission through
// fulfillment. Category, subtype, weight and the computed reward are fixed at
// creation; only Status and OrganizationID change afterwards.
type PickupOrder struct {
	ID             uuid.UUID  `db:"id"`
	UserID         int        `db:"user_id"`
	WasteCategory  string     `db:"waste_category"`
	WasteSubtype   string     `db:"waste_subtype"`
	WeightKg       float64    `db:"weight_kg"`
	Description    string     `db:"description"`
	ImageURL       string     `db:"image_url"`
	PickupAddress  string     `db:"pickup_address"`
	PickupDate     *time.Time `db:"pickup_date"`
	RewardAmount   float64    `db:"reward_amount"`
	RewardKind     string     `db:"reward_kind"`
	Status         string     `db:"status"`
	OrganizationID *uuid.UUID `db:"organization_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// DraftReward carries the reward selection through the creation call. It is
// never persisted on its own; the chosen kind and the priced amount land on the
// order row once and are immutable after that.
type DraftReward struct {
	Kind string
}

type Organization struct {
	ID          uuid.UUID `db:"id"`
	UserID      int       `db:"user_id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Address     string    `db:"address"`
	Description string    `db:"description"`
	WasteTypes  string    `db:"waste_types"`
	CreatedAt   time.Time `db:"created_at"`
}

// LeaderboardEntry is the per-user lifetime aggregate. Fields only grow under
// correct operation; Recompute replays them from completed orders.
type LeaderboardEntry struct {
	ID                   int     `db:"id"`
	UserID               int     `db:"user_id"`
	TotalCashEarned      float64 `db:"total_cash_earned"`
	TotalEcoPoints       int     `db:"total_eco_points"`
	TotalOrdersCompleted int     `db:"total_orders_completed"`
}

// Payout delivery states for the external provider.
const (
	PayoutStatusNew    string = "NEW"
	PayoutStatusSent   string = "SENT"
	PayoutStatusFailed string = "FAILED"
)

// Payout records the single reward disbursement owed for a completed order.
// order_id is unique, which is what makes completion aggregation idempotent.
type Payout struct {
	ID             int        `db:"id"`
	OrderID        uuid.UUID  `db:"order_id"`
	UserID         int        `db:"user_id"`
	RewardKind     string     `db:"reward_kind"`
	Amount         float64    `db:"amount"`
	Status         string     `db:"status"`
	GiftCardNumber string     `db:"gift_card_number"`
	CreatedAt      time.Time  `db:"created_at"`
	SentAt         *time.Time `db:"sent_at"`
}
