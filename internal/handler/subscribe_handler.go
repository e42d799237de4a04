package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wakepress/internal/service"
)

// Subscribe adds an email to the subscriber list and sends the welcome
// email. The unique index on email is the duplicate guard, so a repeated
// subscribe is a 400, not a second row.
func (a *API) Subscribe(c *gin.Context) {
	var payload struct {
		Email string `json:"email" form:"email" binding:"required,email"`
	}
	if err := c.ShouldBind(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid email address.")
		return
	}

	if _, err := a.subscriptions.Subscribe(payload.Email); err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			respondError(c, http.StatusBadRequest, "Email is already subscribed.")
			return
		}
		a.log.WithError(err).Error("failed to save subscription")
		respondError(c, http.StatusInternalServerError, "Error subscribing. Please try again.")
		return
	}

	if err := a.mail.SendConfirmation(payload.Email); err != nil {
		a.log.WithError(err).WithField("to", payload.Email).Error("failed to send confirmation email")
		respondError(c, http.StatusInternalServerError, "Error subscribing. Please try again.")
		return
	}

	respondOK(c, "Thank you for subscribing! Confirmation email sent.")
}
