package usecase

import (
	"context"

	"clinic-directory/internal/converter"
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"
	"clinic-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ApprovalUsecase is the only writer of Doctor.AccessState. Approve and
// deny are unconditional single-row writes: idempotent, reversible, legal
// from any prior state.
type ApprovalUsecase interface {
	Approve(ctx context.Context, doctorID uuid.UUID) (*dto.ApprovalResponse, error)
	Deny(ctx context.Context, doctorID uuid.UUID) (*dto.ApprovalResponse, error)
	ListPending(ctx context.Context) (*dto.DoctorListResponse, error)
}

type approvalUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewApprovalUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) ApprovalUsecase {
	return &approvalUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *approvalUsecase) Approve(ctx context.Context, doctorID uuid.UUID) (*dto.ApprovalResponse, error) {
	return u.transition(ctx, doctorID, entity.AccessApproved)
}

func (u *approvalUsecase) Deny(ctx context.Context, doctorID uuid.UUID) (*dto.ApprovalResponse, error) {
	return u.transition(ctx, doctorID, entity.AccessDenied)
}

func (u *approvalUsecase) transition(ctx context.Context, doctorID uuid.UUID, state entity.AccessState) (*dto.ApprovalResponse, error) {
	matched, err := u.doctorRepo.UpdateAccessState(u.db.WithContext(ctx), doctorID, state)
	if err != nil {
		u.log.Warnf("Failed to update access state for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if matched == 0 {
		return nil, ErrDoctorNotFound
	}

	u.log.Infof("Doctor %s access state set to %s", doctorID, state)

	return &dto.ApprovalResponse{
		DoctorID:    doctorID,
		AccessState: string(state),
		Matched:     matched,
	}, nil
}

// ListPending returns doctors awaiting administrator review, with their
// references resolved for display.
func (u *approvalUsecase) ListPending(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByAccessState(u.db.WithContext(ctx), entity.AccessPending)
	if err != nil {
		u.log.Warnf("Failed to list pending doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}
