package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/idealmodas/crediario/internal/entity"
	"github.com/idealmodas/crediario/internal/usecase"
)

type AuthHandler struct {
	LoginUC *usecase.LoginUseCase
}

func NewAuthHandler(uc *usecase.LoginUseCase) *AuthHandler {
	return &AuthHandler{LoginUC: uc}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			// Genérico de propósito: não dizemos qual campo errou.
			writeErrorResponse(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Credenciais inválidas")
			return
		}
		log.Printf("erro no login: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno no servidor")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
