package slot

import (
	dto "classic_slot/internal/api/dto/slot"
	"classic_slot/internal/converter"
	"classic_slot/internal/service"
	slotServ "classic_slot/internal/service/slot"
	"classic_slot/pkg/req"
	"classic_slot/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSlotSpin(payload))
	if err != nil {
		resp.WriteError(w, statusFor(err), err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EvaluateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.serv.Evaluate(r.Context(), converter.ToEvaluateRequest(payload))
	if err != nil {
		resp.WriteError(w, statusFor(err), err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEvaluateResponse(*result))
}

func (h *Handler) Machine(w http.ResponseWriter, r *http.Request) {
	info, err := h.serv.Machine(r.Context())
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMachineResponse(*info))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, slotServ.ErrInvalidCoins), errors.Is(err, slotServ.ErrInvalidSymbol):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
