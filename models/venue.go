package models

import "time"

type VenuePlan string

const (
	PlanTrial VenuePlan = "trial"
	PlanPaid  VenuePlan = "paid"
)

// Venue is the tenant root. Feedback, questions, staff, table positions and
// NPS scores all hang off a venue. A venue is looked up by the authenticated
// account's email (one account per venue).
type Venue struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	OwnerEmail       string    `json:"owner_email" gorm:"size:255;uniqueIndex;not null"`
	Plan             VenuePlan `json:"plan" gorm:"type:varchar(20);not null;default:'trial';check:plan IN ('trial','paid')"`
	StripeCustomerID *string   `json:"stripe_customer_id,omitempty" gorm:"size:255"`
	TrialEndsAt      *time.Time `json:"trial_ends_at,omitempty"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:VenueID"`
	Staff     []Staff    `json:"staff,omitempty" gorm:"foreignKey:VenueID"`
}

// TableName specifies the table name for the Venue model
func (Venue) TableName() string {
	return "venues"
}
