package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Contact relays a contact-form submission to the operator inbox. The
// submitter's address goes in the From header and is deliberately not
// format-validated here.
func (a *API) Contact(c *gin.Context) {
	var payload struct {
		Name    string `json:"name" form:"name"`
		Email   string `json:"email" form:"email" binding:"required"`
		Subject string `json:"subject" form:"subject"`
		Message string `json:"message" form:"message"`
	}
	if err := c.ShouldBind(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Email is required.")
		return
	}

	if err := a.mail.SendContact(a.cfg.ContactInbox, payload.Name, payload.Email, payload.Subject, payload.Message); err != nil {
		a.log.WithError(err).Error("failed to relay contact form")
		respondError(c, http.StatusInternalServerError, "Error submitting the form. Please try again.")
		return
	}

	respondOK(c, "Thank you for your message! We will be in contact with you soon.")
}
