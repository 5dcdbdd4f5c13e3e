package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/delivery/http/middleware"
	"clinic-directory/internal/usecase"
	"clinic-directory/pkg/response"
	"clinic-directory/pkg/validator"

	"github.com/google/uuid"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// Register handles doctor registration
// @Summary Register a new doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body dto.RegisterDoctorRequest true "Register Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctors/register [post]
func (h *DoctorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorEmailExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrInvalidFeeFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to register doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", result)
}

// Login handles doctor login
// @Summary Login as doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /doctors/login [post]
func (h *DoctorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound, usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", result)
}

// ListApproved lists the visible doctor directory
// @Summary List approved doctors
// @Tags Doctors
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	result, err := h.doctorUsecase.ListApproved(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}

// GetMyProfile returns the authenticated doctor's profile
// @Summary Get own doctor profile
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/me [get]
func (h *DoctorHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetSubjectIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.doctorUsecase.GetMyProfile(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", result)
}

// UploadProfilePicture attaches a profile picture to the authenticated doctor
// @Summary Upload profile picture
// @Tags Doctors
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors/me/picture [post]
func (h *DoctorHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.doctorUsecase.UploadProfilePicture, "Profile picture uploaded successfully")
}

// UploadCV attaches a CV document to the authenticated doctor
// @Summary Upload CV
// @Tags Doctors
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors/me/cv [post]
func (h *DoctorHandler) UploadCV(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.doctorUsecase.UploadCV, "CV uploaded successfully")
}

func (h *DoctorHandler) upload(
	w http.ResponseWriter,
	r *http.Request,
	save func(ctx context.Context, doctorID uuid.UUID, filename string, content io.Reader) (*dto.DoctorResponse, error),
	message string,
) {
	doctorID, ok := middleware.GetSubjectIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "File is required", nil)
		return
	}
	defer file.Close()

	result, err := save(r.Context(), doctorID, header.Filename, file)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrEmptyAttachment:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to upload attachment")
		}
		return
	}

	response.Success(w, http.StatusOK, message, result)
}

// DeleteProfilePicture removes the authenticated doctor's profile picture
// @Summary Delete profile picture
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/me/picture [delete]
func (h *DoctorHandler) DeleteProfilePicture(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetSubjectIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.doctorUsecase.DeleteProfilePicture(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNoProfilePicture:
			response.NotFound(w, "Doctor has no profile picture")
		default:
			response.InternalServerError(w, "Failed to delete profile picture")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile picture deleted successfully", result)
}
