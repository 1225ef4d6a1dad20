package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/idealmodas/crediario/internal/entity"
	"github.com/idealmodas/crediario/internal/infra/http/middleware"
	"github.com/idealmodas/crediario/internal/usecase"
)

// AdminHandler atende o painel: lista tudo e grava decisões.
// A filtragem é local no painel; o servidor devolve as linhas como estão.
type AdminHandler struct {
	Repo     entity.ApplicationRepositoryInterface
	DecideUC *usecase.DecideApplicationUseCase
}

func NewAdminHandler(repo entity.ApplicationRepositoryInterface, decideUC *usecase.DecideApplicationUseCase) *AdminHandler {
	return &AdminHandler{Repo: repo, DecideUC: decideUC}
}

func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("erro ao listar pré-cadastros: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno no servidor")
		return
	}

	if apps == nil {
		apps = []entity.CreditApplication{}
	}

	writeJSON(w, http.StatusOK, apps)
}

func (h *AdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ID", "id inválido")
		return
	}

	var input usecase.DecideApplicationInput
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}
	input.ID = id

	output, err := h.DecideUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, entity.ErrApplicationNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Pré-cadastro não encontrado")
			return
		}
		if usecase.IsDomainError(err) {
			writeErrorResponse(w, http.StatusBadRequest, err.(*usecase.DomainError).Code, err.Error())
			return
		}
		log.Printf("erro ao atualizar pré-cadastro %d: %v", id, err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno no servidor")
		return
	}

	middleware.RecordDecision(input.Status)
	writeJSON(w, http.StatusOK, output)
}
