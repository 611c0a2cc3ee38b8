package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mateusmacedo/go-airline/internal/airline/application"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
)

const requestTimeout = 10 * time.Second

type AirlineHTTPHandler struct {
	commandBus application.BookTicketCommandBus
	queryBus   application.TicketClassesQueryBus
	facade     *application.BookingFacade
	systemID   string
	logger     pkgApp.AppLogger
}

func NewAirlineHTTPHandler(
	commandBus application.BookTicketCommandBus,
	queryBus application.TicketClassesQueryBus,
	facade *application.BookingFacade,
	systemID string,
	logger pkgApp.AppLogger,
) *AirlineHTTPHandler {
	return &AirlineHTTPHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		facade:     facade,
		systemID:   systemID,
		logger:     logger,
	}
}

func (h *AirlineHTTPHandler) HandleBookTicket(w http.ResponseWriter, r *http.Request) {
	var data application.BookTicketData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	command := application.NewBookingCommand(h.facade, data.ClassType)
	if err := h.commandBus.Dispatch(ctx, command); err != nil {
		pkgApp.LogError(ctx, h.logger, "error dispatching booking command", err, map[string]interface{}{
			"class_type": data.ClassType,
		})
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{"message": "Booking command dispatched", "data": data})
}

func (h *AirlineHTTPHandler) HandleListTicketClasses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	classes, err := h.queryBus.Dispatch(ctx, application.NewListTicketClassesQuery())
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, classes)
}

func (h *AirlineHTTPHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "airlineSystemId": h.systemID})
}

func (h *AirlineHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestID, requestIDToContext)
		r.Post("/bookings", h.HandleBookTicket)
		r.Get("/ticket-classes", h.HandleListTicketClasses)
		r.Get("/health", h.HandleHealth)
	})
}

// requestIDToContext exposes chi's request id to AppLogger implementations.
func requestIDToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestID := middleware.GetReqID(r.Context()); requestID != "" {
			r = r.WithContext(pkgApp.WithRequestID(r.Context(), requestID))
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}
