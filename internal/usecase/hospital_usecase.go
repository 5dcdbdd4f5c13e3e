package usecase

import (
	"context"
	"errors"
	"io"

	"clinic-directory/internal/converter"
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/repository"
	"clinic-directory/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrHospitalNotFound = errors.New("hospital not found")

// HospitalUsecase covers the administrator-facing hospital operations.
// Hospitals are created only by the directory registry during doctor
// registration and are never deleted here.
type HospitalUsecase interface {
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	UpdateHospital(ctx context.Context, hospitalID uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	UploadImage(ctx context.Context, hospitalID uuid.UUID, filename string, content io.Reader) (*dto.HospitalResponse, error)
}

type hospitalUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	hospitalRepo    repository.HospitalRepository
	attachmentStore storage.AttachmentStore
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	attachmentStore storage.AttachmentStore,
) HospitalUsecase {
	return &hospitalUsecase{
		db:              db,
		log:             log,
		hospitalRepo:    hospitalRepo,
		attachmentStore: attachmentStore,
	}
}

// ListHospitals returns all hospitals ordered by visiting time, then
// address, then image presence.
func (u *hospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)

	return &dto.HospitalListResponse{
		Hospitals: responses,
		Total:     len(responses),
	}, nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, hospitalID uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	if req.Address != "" {
		hospital.Address = req.Address
	}
	if req.VisitingTime != "" {
		hospital.VisitingTime = req.VisitingTime
	}
	if req.Phone != "" {
		hospital.Phone = req.Phone
	}

	if err := u.hospitalRepo.Update(u.db.WithContext(ctx), hospital); err != nil {
		u.log.Warnf("Failed to update hospital %s: %+v", hospitalID, err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) UploadImage(ctx context.Context, hospitalID uuid.UUID, filename string, content io.Reader) (*dto.HospitalResponse, error) {
	if filename == "" {
		return nil, ErrEmptyAttachment
	}

	if err := u.attachmentStore.Save(ctx, filename, content); err != nil {
		u.log.Warnf("Failed to save hospital image %s: %+v", filename, err)
		return nil, err
	}

	rows, err := u.hospitalRepo.UpdateImage(u.db.WithContext(ctx), hospitalID, filename)
	if err != nil {
		u.log.Warnf("Failed to update hospital image reference: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrHospitalNotFound
	}

	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to reload hospital %s: %+v", hospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}
