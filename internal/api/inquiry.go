package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/reepower84-png/rocket-call-realestate/internal/apperr"
	"github.com/reepower84-png/rocket-call-realestate/internal/inquiry"
	"github.com/reepower84-png/rocket-call-realestate/internal/model"
)

// InquiryHandler handles the inquiry endpoints.
type InquiryHandler struct {
	Service *inquiry.Service
}

type submitRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type updateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Submit handles POST /api/inquiry.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "잘못된 요청 형식입니다.")
		return
	}

	inq, err := h.Service.Create(r.Context(), req.Name, req.Phone, req.Message)
	if err != nil {
		if apperr.IsValidation(err) {
			jsonError(w, http.StatusBadRequest, errorMessage(err))
			return
		}
		slog.Error("failed to create inquiry", "error", err)
		jsonError(w, http.StatusInternalServerError, "데이터 저장 중 오류가 발생했습니다.")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "상담 신청이 완료되었습니다.",
		"inquiry": inq,
	})
}

// List handles GET /api/inquiries.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.Service.List(r.Context())
	if err != nil {
		slog.Error("failed to list inquiries", "error", err)
		jsonError(w, http.StatusInternalServerError, "데이터를 불러오는 중 오류가 발생했습니다.")
		return
	}
	if inquiries == nil {
		inquiries = []model.Inquiry{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{"inquiries": inquiries})
}

// UpdateStatus handles PATCH /api/inquiries.
func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "잘못된 요청 형식입니다.")
		return
	}

	if req.ID == "" || req.Status == "" {
		jsonError(w, http.StatusBadRequest, "ID와 상태값이 필요합니다.")
		return
	}

	inq, err := h.Service.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		switch {
		case apperr.IsValidation(err):
			jsonError(w, http.StatusBadRequest, errorMessage(err))
		case apperr.IsNotFound(err):
			jsonError(w, http.StatusNotFound, "해당 문의를 찾을 수 없습니다.")
		default:
			slog.Error("failed to update inquiry status", "id", req.ID, "error", err)
			jsonError(w, http.StatusInternalServerError, "업데이트 중 오류가 발생했습니다.")
		}
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"inquiry": inq,
	})
}

// Delete handles DELETE /api/inquiries?id=...
func (h *InquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		jsonError(w, http.StatusBadRequest, "ID가 필요합니다.")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if apperr.IsNotFound(err) {
			jsonError(w, http.StatusNotFound, "해당 문의를 찾을 수 없습니다.")
			return
		}
		slog.Error("failed to delete inquiry", "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "삭제 중 오류가 발생했습니다.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "삭제되었습니다.",
	})
}

// errorMessage extracts the user-facing message from an application error.
func errorMessage(err error) string {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
