package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myhomesite/internal/mailer"
)

type relayPayload struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Suburb      string `json:"suburb"`
	Email       string `json:"email"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

// SendContactEmail is the stateless bridge between a form submission and the
// email provider: validate, format, forward. One attempt per request, no
// retry, no queueing, nothing persisted here.
func (a *API) SendContactEmail(c *gin.Context) {
	if !a.mail.Enabled() {
		respondError(c, http.StatusInternalServerError, "RESEND_API_KEY not configured")
		return
	}

	var payload relayPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	if payload.Name == "" || payload.Phone == "" || payload.Suburb == "" || payload.ProjectType == "" {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	email := mailer.BuildEnquiryEmail(mailer.EnquiryDetails{
		Name:        payload.Name,
		Phone:       payload.Phone,
		Suburb:      payload.Suburb,
		Email:       payload.Email,
		ProjectType: payload.ProjectType,
		Message:     payload.Message,
	}, a.enquiryTo, a.enquiryFrom)

	id, err := a.mail.Send(email)
	if err != nil {
		log.Printf("[MAIL] relay send failed: %v", err)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "emailId": id})
}

// RelayPreflight answers non-preflight OPTIONS probes; true CORS preflights
// are short-circuited by the cors middleware before reaching here.
func (a *API) RelayPreflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
