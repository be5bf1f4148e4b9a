package simulation

import (
	dto "classic_slot/internal/api/dto/simulation"
	"classic_slot/internal/converter"
	"classic_slot/internal/repository"
	"classic_slot/internal/service"
	simServ "classic_slot/internal/service/simulation"
	"classic_slot/pkg/req"
	"classic_slot/pkg/resp"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HandlerDeps struct {
	Serv service.SimulationService
}

type Handler struct {
	serv service.SimulationService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	run, err := h.serv.Run(r.Context(), converter.ToSimulationRequest(payload))
	if err != nil {
		resp.WriteError(w, statusFor(err), err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRunResponse(*run))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid run id: %w", err))
		return
	}

	run, err := h.serv.Get(r.Context(), id)
	if err != nil {
		resp.WriteError(w, statusFor(err), err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunResponse(*run))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		limit = n
	}

	runs, err := h.serv.List(r.Context(), limit)
	if err != nil {
		resp.WriteError(w, statusFor(err), err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunsResponse(runs))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, simServ.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrRunNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
