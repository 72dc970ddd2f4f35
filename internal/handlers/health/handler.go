package health

import (
	"context"
	"net/http"
	"time"

	"atelier/infras/postgres"
	"atelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Health)
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health reports liveness and database connectivity.
// @Summary Health check
// @Description Report service liveness and database connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse "Service healthy"
// @Failure 503 {object} response.Message "Service unhealthy"
// @Router /api/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("read database ping failed")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("write database ping failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Database: "up",
	})
}
