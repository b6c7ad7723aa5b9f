package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/utils"
	"github.com/agiletrack/sprint-roi/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, msgJSONParseError)
		return
	}

	registeredUser, token, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", registeredUser.ID).Msg("user successfully registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, msgJSONParseError)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
