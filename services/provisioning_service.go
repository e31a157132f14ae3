package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"venue-feedback-server/config"
	"venue-feedback-server/models"
)

// ErrAccountExists is returned when provisioning hits an email already in use.
var ErrAccountExists = errors.New("an account with this email already exists")

// ProvisioningService creates operator accounts and their venue records.
// It is called from the trial signup endpoint and from the Stripe webhook
// after a completed checkout.
type ProvisioningService struct {
	db  *gorm.DB
	jwt *JWTService
}

// NewProvisioningService creates a new provisioning service
func NewProvisioningService(db *gorm.DB) *ProvisioningService {
	return &ProvisioningService{db: db, jwt: NewJWTService()}
}

// AccountDetails is everything needed to stand up an account + venue pair.
type AccountDetails struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	VenueName string
}

// ProvisionAccount creates the user and its venue in one transaction. The
// venue's OwnerEmail mirrors the user's email; that is the 1:1 link the
// auth middleware resolves the tenant through.
func (s *ProvisioningService) ProvisionAccount(details AccountDetails, plan models.VenuePlan, stripeCustomerID *string) (*models.Venue, error) {
	email := strings.ToLower(strings.TrimSpace(details.Email))
	if email == "" || details.VenueName == "" {
		return nil, fmt.Errorf("email and venue name are required")
	}

	var venue *models.Venue
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", email).First(&existing).Error; err == nil {
			return ErrAccountExists
		}

		hashed, err := s.jwt.HashPassword(details.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := models.User{
			Email:        email,
			FirstName:    details.FirstName,
			LastName:     details.LastName,
			PasswordHash: hashed,
			Role:         models.RoleOwner,
			IsActive:     true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		v := models.Venue{
			Name:             details.VenueName,
			OwnerEmail:       email,
			Plan:             plan,
			StripeCustomerID: stripeCustomerID,
		}
		if plan == models.PlanTrial {
			ends := time.Now().AddDate(0, 0, config.AppConfig.Stripe.TrialDays)
			v.TrialEndsAt = &ends
		}
		if err := tx.Create(&v).Error; err != nil {
			return err
		}

		venue = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Provisioned %s account for %s (venue %d)", venue.Plan, email, venue.ID)
	return venue, nil
}
