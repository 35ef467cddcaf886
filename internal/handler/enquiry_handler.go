package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myhomesite/internal/service"
)

// User-facing copy for the only two observable submission outcomes.
const (
	enquiryThanksMessage  = "Thank you! We'll be in touch within 24 hours."
	enquiryFailureMessage = "There was an error submitting your enquiry. Please try calling us directly."
)

type enquiryPayload struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Suburb      string `json:"suburb"`
	Email       string `json:"email"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

func (p enquiryPayload) toInput() service.EnquiryInput {
	return service.EnquiryInput{
		Name:        p.Name,
		Phone:       p.Phone,
		Suburb:      p.Suburb,
		Email:       p.Email,
		ProjectType: p.ProjectType,
		Message:     p.Message,
	}
}

// SubmitEnquiry runs the submission pipeline for the quote form. Notification
// delivery does not influence the response: once the enquiry is persisted the
// caller sees success.
func (a *API) SubmitEnquiry(c *gin.Context) {
	var payload enquiryPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	enquiry, err := a.enquiries.Submit(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnquiryNameRequired),
			errors.Is(err, service.ErrEnquiryPhoneRequired),
			errors.Is(err, service.ErrEnquirySuburbRequired):
			respondError(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, service.ErrEnquiryProjectInvalid):
			respondError(c, http.StatusBadRequest, "Please select a valid project type")
		default:
			respondError(c, http.StatusInternalServerError, enquiryFailureMessage)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   enquiryThanksMessage,
		"reference": enquiry.Reference,
	})
}

// ListEnquiries returns enquiries for the admin view.
func (a *API) ListEnquiries(c *gin.Context) {
	result, err := a.enquiries.List(service.EnquiryFilter{
		Status:  c.Query("status"),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: parsePositiveInt(c.DefaultQuery("perPage", "20"), 20),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load enquiries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      result.Items,
		"total":      result.Total,
		"page":       result.Page,
		"perPage":    result.PerPage,
		"totalPages": result.TotalPages,
	})
}
