package api

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	authUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/usecase"
	submissionUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/usecase"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase       authUsecase.AuthUsecase
	submissionUsecase submissionUsecase.SubmissionUsecase
	config            *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, submissionUc submissionUsecase.SubmissionUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:       authUc,
		submissionUsecase: submissionUc,
		config:            cfg,
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(requestIDMiddleware(), gin.Logger(), recoveryMiddleware(), corsMiddleware(h.config.CORSOrigin))

	SetupRoutes(r, h.authUsecase, h.submissionUsecase)
	return r
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests
// for at most the configured shutdown timeout.
func (h *Handler) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return h.Serve(ctx, listener)
}

func (h *Handler) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           h.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] Server listening at http://%s", listener.Addr())
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := h.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("[Server] Shutting down, waiting up to %s for active requests", timeout)
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
