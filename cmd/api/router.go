package api

import (
	"net/http"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/delivery"
	authUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/usecase"
	submissionDelivery "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/delivery"
	submissionUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, submissionUsecase submissionUsecase.SubmissionUsecase) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	submissionHandler := submissionDelivery.NewSubmissionHandler(submissionUsecase)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AutoHub Backend is running!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Submission routes (protected)
	protected := r.Group("/")
	protected.Use(delivery.AuthMiddleware(authUsecase))
	{
		protected.GET("/my-test-drives", submissionHandler.MyTestDrives)
		protected.POST("/test-drive", submissionHandler.ScheduleTestDrive)
		protected.POST("/contact", submissionHandler.Contact)
		protected.POST("/financing-request", submissionHandler.FinancingRequest)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
}
