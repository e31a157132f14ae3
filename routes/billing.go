package routes

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-feedback-server/database"
	"venue-feedback-server/middleware"
	"venue-feedback-server/models"
	"venue-feedback-server/services"
)

// RegisterBillingRoutes registers the public billing endpoints: checkout
// session creation, trial signup and the Stripe webhook
func RegisterBillingRoutes(router *gin.RouterGroup) {
	billing := services.NewBillingService(database.DB)
	provisioning := services.NewProvisioningService(database.DB)

	router.POST("/billing/create-checkout-session", func(c *gin.Context) {
		var req services.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
			return
		}

		if ok, problems := middleware.ValidatePasswordStrength(req.Password); !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Weak password",
				"message": "Password does not meet security requirements",
				"details": problems,
			})
			return
		}

		sessionID, err := billing.CreateCheckoutSession(req)
		if err != nil {
			log.Printf("❌ Checkout session creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": sessionID})
	})

	router.POST("/billing/create-trial-account", func(c *gin.Context) {
		var req struct {
			Email     string `json:"email" binding:"required,email"`
			Password  string `json:"password" binding:"required,min=8"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			VenueName string `json:"venueName" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
			return
		}

		if ok, problems := middleware.ValidatePasswordStrength(req.Password); !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Weak password",
				"message": "Password does not meet security requirements",
				"details": problems,
			})
			return
		}

		_, err := provisioning.ProvisionAccount(services.AccountDetails{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			VenueName: req.VenueName,
		}, models.PlanTrial, nil)
		if err != nil {
			if errors.Is(err, services.ErrAccountExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "Account exists", "message": err.Error()})
				return
			}
			log.Printf("❌ Trial provisioning failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trial account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Trial account created"})
	})

	// The webhook reads the raw body; signature verification covers the
	// exact bytes Stripe signed
	router.POST("/billing/webhook", func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
			return
		}

		if err := billing.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
			log.Printf("❌ Webhook handling failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook verification failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	})
}
