package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/idealmodas/crediario/internal/infra/http/middleware"
	"github.com/idealmodas/crediario/internal/usecase"
)

type ApplicationHandler struct {
	CreateUC    *usecase.CreateApplicationUseCase
	rateLimiter *RateLimiter
}

func NewApplicationHandler(uc *usecase.CreateApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{
		CreateUC:    uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// HandleCreate recebe o formulário público. Campo desconhecido é
// rejeitado: o payload tem esquema fechado.
func (h *ApplicationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Muitas tentativas. Aguarde um instante.")
		return
	}

	var input usecase.CreateApplicationInput

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeErrorResponse(w, http.StatusBadRequest, err.(*usecase.DomainError).Code, err.Error())
			return
		}
		log.Printf("erro ao criar pré-cadastro: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno no servidor")
		return
	}

	middleware.RecordApplicationReceived()
	writeJSON(w, http.StatusCreated, output)
}
