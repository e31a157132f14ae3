package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"venue-feedback-server/config"
	"venue-feedback-server/models"
)

// BillingService wraps the Stripe checkout and webhook flows. Account
// details ride through checkout as session metadata and come back on the
// completed event, where provisioning picks them up.
type BillingService struct {
	provisioning *ProvisioningService
}

// NewBillingService creates a new billing service
func NewBillingService(db *gorm.DB) *BillingService {
	stripe.Key = config.AppConfig.Stripe.SecretKey
	return &BillingService{provisioning: NewProvisioningService(db)}
}

// CheckoutRequest is the payload for creating a hosted checkout session.
type CheckoutRequest struct {
	Email     string `json:"email" binding:"required,email"`
	PriceID   string `json:"priceId" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	VenueName string `json:"venueName" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// CreateCheckoutSession creates a Stripe checkout session and returns its id
// for the browser redirect. The signup details travel in session metadata so
// the webhook can provision the account after payment.
func (s *BillingService) CreateCheckoutSession(req CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(req.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(config.AppConfig.Stripe.SuccessURL),
		CancelURL:  stripe.String(config.AppConfig.Stripe.CancelURL),
	}
	params.AddMetadata("first_name", req.FirstName)
	params.AddMetadata("last_name", req.LastName)
	params.AddMetadata("venue_name", req.VenueName)
	params.AddMetadata("password", req.Password)

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	log.Printf("💳 Checkout session %s created for %s", sess.ID, req.Email)
	return sess.ID, nil
}

// HandleWebhook verifies the event signature against the shared webhook
// secret and provisions the account on checkout.session.completed. Any
// other event type is acknowledged and ignored. No retry orchestration
// here; Stripe redelivers on non-2xx responses.
func (s *BillingService) HandleWebhook(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, config.AppConfig.Stripe.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		log.Printf("💳 Ignoring webhook event %s", event.Type)
		return nil
	}

	var completed stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &completed); err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}

	var customerID *string
	if completed.Customer != nil {
		customerID = &completed.Customer.ID
	}

	details := AccountDetails{
		Email:     completed.CustomerEmail,
		Password:  completed.Metadata["password"],
		FirstName: completed.Metadata["first_name"],
		LastName:  completed.Metadata["last_name"],
		VenueName: completed.Metadata["venue_name"],
	}
	if details.Email == "" && completed.CustomerDetails != nil {
		details.Email = completed.CustomerDetails.Email
	}

	if _, err := s.provisioning.ProvisionAccount(details, models.PlanPaid, customerID); err != nil {
		// A replayed webhook for an already-provisioned account is fine
		if err == ErrAccountExists {
			log.Printf("💳 Webhook replay for existing account %s, ignoring", details.Email)
			return nil
		}
		return err
	}

	return nil
}
