package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/usecase"
	"clinic-directory/pkg/response"
	"clinic-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AdminHandler serves the administrator surface: the doctor approval gate
// and hospital maintenance.
type AdminHandler struct {
	approvalUsecase usecase.ApprovalUsecase
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewAdminHandler(
	approvalUsecase usecase.ApprovalUsecase,
	hospitalUsecase usecase.HospitalUsecase,
	validator *validator.CustomValidator,
) *AdminHandler {
	return &AdminHandler{
		approvalUsecase: approvalUsecase,
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// ApproveDoctor grants a doctor directory visibility
// @Summary Approve a doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ApprovalRequest true "Approval Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/approve [post]
func (h *AdminHandler) ApproveDoctor(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.approvalUsecase.Approve, "Doctor approved")
}

// DenyDoctor removes a doctor from the visible directory
// @Summary Deny a doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ApprovalRequest true "Approval Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/deny [post]
func (h *AdminHandler) DenyDoctor(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.approvalUsecase.Deny, "Doctor denied")
}

func (h *AdminHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, doctorID uuid.UUID) (*dto.ApprovalResponse, error),
	message string,
) {
	var req dto.ApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	result, err := apply(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update doctor access state")
		}
		return
	}

	response.Success(w, http.StatusOK, message, result)
}

// ListPendingDoctors lists doctors awaiting review
// @Summary List pending doctors
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/doctors/pending [get]
func (h *AdminHandler) ListPendingDoctors(w http.ResponseWriter, r *http.Request) {
	result, err := h.approvalUsecase.ListPending(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pending doctors")
		return
	}

	response.Success(w, http.StatusOK, "Pending doctors retrieved successfully", result)
}

// ListHospitals lists all registered hospitals
// @Summary List hospitals
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/hospitals [get]
func (h *AdminHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	result, err := h.hospitalUsecase.ListHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", result)
}

// UpdateHospital updates a hospital's mutable fields
// @Summary Update hospital
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param request body dto.UpdateHospitalRequest true "Update Hospital Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/hospitals/{id} [put]
func (h *AdminHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.hospitalUsecase.UpdateHospital(r.Context(), hospitalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to update hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", result)
}

// UploadHospitalImage attaches an image to a hospital
// @Summary Upload hospital image
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Hospital ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/hospitals/{id}/image [post]
func (h *AdminHandler) UploadHospitalImage(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "File is required", nil)
		return
	}
	defer file.Close()

	result, err := h.hospitalUsecase.UploadImage(r.Context(), hospitalID, header.Filename, file)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrEmptyAttachment:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to upload hospital image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital image uploaded successfully", result)
}
