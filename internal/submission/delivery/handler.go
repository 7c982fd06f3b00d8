package delivery

import (
	"encoding/json"
	"log"
	"net/http"

	authdelivery "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/delivery"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/domain"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/usecase"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves the protected submission routes. Every route
// expects AuthMiddleware to have run.
type SubmissionHandler struct {
	submissionUsecase usecase.SubmissionUsecase
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionUsecase usecase.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{submissionUsecase: submissionUsecase}
}

// MyTestDrives lists the caller's test drives
// GET /my-test-drives
func (h *SubmissionHandler) MyTestDrives(c *gin.Context) {
	userID := c.GetUint(authdelivery.UserIDKey)

	drives, err := h.submissionUsecase.ListTestDrives(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}

// ScheduleTestDrive
// POST /test-drive
func (h *SubmissionHandler) ScheduleTestDrive(c *gin.Context) {
	h.submit(c, func(userID uint, payload map[string]any) (*domain.Receipt, error) {
		return h.submissionUsecase.Submit(c.Request.Context(), domain.TestDrives, userID, payload)
	})
}

// Contact stores a contact form message
// POST /contact
func (h *SubmissionHandler) Contact(c *gin.Context) {
	h.submit(c, func(userID uint, payload map[string]any) (*domain.Receipt, error) {
		return h.submissionUsecase.Submit(c.Request.Context(), domain.Messages, userID, payload)
	})
}

// FinancingRequest
// POST /financing-request
func (h *SubmissionHandler) FinancingRequest(c *gin.Context) {
	h.submit(c, func(userID uint, payload map[string]any) (*domain.Receipt, error) {
		return h.submissionUsecase.SubmitFinancing(c.Request.Context(), userID, payload)
	})
}

func (h *SubmissionHandler) submit(c *gin.Context, store func(userID uint, payload map[string]any) (*domain.Receipt, error)) {
	payload := map[string]any{}
	if c.Request.ContentLength != 0 {
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		if err := dec.Decode(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
	}

	receipt, err := store(c.GetUint(authdelivery.UserIDKey), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     receipt.Message,
		receipt.IDKey: receipt.ID,
	})
}

func respondError(c *gin.Context, err error) {
	status := apperror.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[Submission] [ERROR] %s %s (request %s): %v", c.Request.Method, c.Request.URL.Path, c.GetString("requestID"), err)
	}
	c.JSON(status, gin.H{"message": apperror.PublicMessage(err)})
}
