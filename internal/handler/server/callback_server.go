package server

import (
	"TUI_video_metadata/infrastructure/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const shutdownTimeout = 5 * time.Second

var (
	ErrInvalidState = errors.New("invalid CSRF state")
	ErrMissingCode  = errors.New("authorization code not found in callback request")
)

type OAuthCallbackResult struct {
	Code  string
	Error error
}

type CallbackHandler interface {
	ListenAndServe(
		ctx context.Context,
		expectedState,
		addr,
		callbackPath string,
		resultChan chan<- OAuthCallbackResult,
	) *http.Server
}

type callbackHandlerImpl struct {
	logger logger.Logger
}

func NewCallbackHandler(logger logger.Logger) CallbackHandler {
	return &callbackHandlerImpl{
		logger: logger,
	}
}

// callbackFunc answers the first request only and reports it on resultChan;
// done is closed once that happens.
func (h *callbackHandlerImpl) callbackFunc(expectedState string, resultChan chan<- OAuthCallbackResult, done chan<- struct{}) http.HandlerFunc {
	var once sync.Once

	return func(w http.ResponseWriter, r *http.Request) {
		handled := false
		once.Do(func() {
			handled = true
			defer close(done)
			resultChan <- h.handle(w, r, expectedState)
		})

		if !handled {
			http.Error(w, "Authorization already handled. You can close this tab.", http.StatusGone)
		}
	}
}

func (h *callbackHandlerImpl) handle(w http.ResponseWriter, r *http.Request, expectedState string) OAuthCallbackResult {
	query := r.URL.Query()

	state := query.Get("state")
	if state != expectedState {
		err := fmt.Errorf("%w: received '%s', expected '%s'", ErrInvalidState, state, expectedState)
		h.logger.Error("CSRF state mismatch", err)

		http.Error(w, "Invalid state. Please try the authentication process again.", http.StatusBadRequest)
		return OAuthCallbackResult{Error: err}
	}

	if authErrParam := query.Get("error"); authErrParam != "" {
		err := fmt.Errorf("authorization error from OAuth provider: %s", authErrParam)
		if errDesc := query.Get("error_description"); errDesc != "" {
			err = fmt.Errorf("authorization error from OAuth provider: %s - %s", authErrParam, errDesc)
		}
		h.logger.Error("OAuth provider error", err)

		http.Error(w, "An error occurred during authorization with the provider. You can close this tab.", http.StatusUnauthorized)
		return OAuthCallbackResult{Error: err}
	}

	code := query.Get("code")
	if code == "" {
		h.logger.Warning("Authorization code not found.")

		http.Error(w, "Authorization code not found in the request.", http.StatusBadRequest)
		return OAuthCallbackResult{Error: ErrMissingCode}
	}

	fmt.Fprint(w, "Authorization received! You can close this browser tab.")
	h.logger.Info("Authorization code received.")

	return OAuthCallbackResult{Code: code}
}

func (h *callbackHandlerImpl) ListenAndServe(
	ctx context.Context,
	expectedState string,
	addr string,
	callbackPath string,
	resultChan chan<- OAuthCallbackResult,
) *http.Server {
	handlerDone := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, h.callbackFunc(expectedState, resultChan, handlerDone))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		h.logger.Info("Starting callback server on " + addr + " - " + callbackPath)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			wrappedErr := fmt.Errorf("error while starting HTTP callback server: %w", err)
			h.logger.Error("Callback server failed", wrappedErr)

			select {
			case resultChan <- OAuthCallbackResult{Error: wrappedErr}:
			default:
			}
		}

		h.logger.Info("Callback server: ListenAndServe returned.")
	}()

	go func() {
		select {
		case <-handlerDone:
			h.logger.Info("Callback server: handler finished, shutting down.")
		case <-ctx.Done():
			h.logger.Info("Callback server: context done (" + ctx.Err().Error() + "), shutting down.")
		}

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("Error while shutting down callback server", err)
		} else {
			h.logger.Info("Callback server shut down.")
		}
	}()

	return httpServer
}
