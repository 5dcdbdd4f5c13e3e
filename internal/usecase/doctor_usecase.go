package usecase

import (
	"context"
	"errors"
	"io"

	"clinic-directory/internal/converter"
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"
	"clinic-directory/internal/domain/repository"
	"clinic-directory/internal/infrastructure/storage"
	"clinic-directory/pkg/jwt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorEmailExists = errors.New("email already exists")
	ErrInvalidFeeFormat  = errors.New("invalid consultation fee")
	ErrEmptyAttachment   = errors.New("attachment filename is required")
	ErrNoProfilePicture  = errors.New("doctor has no profile picture")
)

// DoctorUsecase is the directory registry: doctor onboarding resolves the
// shared reference entities (hospital, occupation) and creates the doctor in
// pending state; listings expose only approved doctors.
type DoctorUsecase interface {
	Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorAuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.DoctorAuthResponse, error)
	ListApproved(ctx context.Context) (*dto.DoctorListResponse, error)
	GetMyProfile(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UploadProfilePicture(ctx context.Context, doctorID uuid.UUID, filename string, content io.Reader) (*dto.DoctorResponse, error)
	DeleteProfilePicture(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UploadCV(ctx context.Context, doctorID uuid.UUID, filename string, content io.Reader) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	hospitalRepo    repository.HospitalRepository
	occupationRepo  repository.OccupationRepository
	jwtService      *jwt.JWTService
	sessionStore    repository.SessionStore
	attachmentStore storage.AttachmentStore
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	hospitalRepo repository.HospitalRepository,
	occupationRepo repository.OccupationRepository,
	jwtService *jwt.JWTService,
	sessionStore repository.SessionStore,
	attachmentStore storage.AttachmentStore,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		hospitalRepo:    hospitalRepo,
		occupationRepo:  occupationRepo,
		jwtService:      jwtService,
		sessionStore:    sessionStore,
		attachmentStore: attachmentStore,
	}
}

// Register resolves hospital and occupation by natural key (creating either
// on first reference), then creates the doctor in pending state. The
// reference resolution is upsert-based, so two doctors registering
// concurrently at the same brand-new hospital share one record.
func (u *doctorUsecase) Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorAuthResponse, error) {
	fee := decimal.Zero
	if req.ConsultationFee != "" {
		var err error
		fee, err = decimal.NewFromString(req.ConsultationFee)
		if err != nil || fee.IsNegative() {
			return nil, ErrInvalidFeeFormat
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.Resolve(tx, req.Hospital, req.City, req.Address)
	if err != nil {
		u.log.Warnf("Failed to resolve hospital: %+v", err)
		return nil, err
	}

	occupation, err := u.occupationRepo.Resolve(tx, req.Occupation)
	if err != nil {
		u.log.Warnf("Failed to resolve occupation: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:            req.Name,
		Surname:         req.Surname,
		Email:           req.Email,
		Password:        string(hashedPassword),
		OccupationID:    occupation.ID,
		HospitalID:      hospital.ID,
		Experience:      req.Experience,
		ConsultationFee: fee,
		AccessState:     entity.AccessPending,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	token, err := issueSession(ctx, u.log, u.jwtService, u.sessionStore, entity.RoleDoctor, doctor.ID)
	if err != nil {
		return nil, err
	}

	doctor.Hospital = *hospital
	doctor.Occupation = *occupation

	return &dto.DoctorAuthResponse{
		Doctor: converter.DoctorToResponse(doctor),
		Token:  token,
	}, nil
}

func (u *doctorUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.DoctorAuthResponse, error) {
	doctor, err := u.doctorRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := issueSession(ctx, u.log, u.jwtService, u.sessionStore, entity.RoleDoctor, doctor.ID)
	if err != nil {
		return nil, err
	}

	return &dto.DoctorAuthResponse{
		Doctor: converter.DoctorToResponse(doctor),
		Token:  token,
	}, nil
}

// ListApproved returns only doctors an administrator has approved; pending
// and denied doctors stay invisible.
func (u *doctorUsecase) ListApproved(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByAccessState(u.db.WithContext(ctx), entity.AccessApproved)
	if err != nil {
		u.log.Warnf("Failed to list approved doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetMyProfile(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByIDWithRefs(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	resp := converter.DoctorToResponse(doctor)
	return &resp, nil
}

func (u *doctorUsecase) UploadProfilePicture(ctx context.Context, doctorID uuid.UUID, filename string, content io.Reader) (*dto.DoctorResponse, error) {
	return u.attach(ctx, doctorID, "image_url", filename, content)
}

func (u *doctorUsecase) UploadCV(ctx context.Context, doctorID uuid.UUID, filename string, content io.Reader) (*dto.DoctorResponse, error) {
	return u.attach(ctx, doctorID, "cv_url", filename, content)
}

func (u *doctorUsecase) DeleteProfilePicture(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.ImageURL == "" {
		return nil, ErrNoProfilePicture
	}

	if err := u.attachmentStore.Delete(ctx, doctor.ImageURL); err != nil {
		u.log.Warnf("Failed to delete attachment %s: %+v", doctor.ImageURL, err)
		return nil, err
	}

	if _, err := u.doctorRepo.UpdateAttachment(u.db.WithContext(ctx), doctorID, "image_url", ""); err != nil {
		u.log.Warnf("Failed to clear profile picture reference: %+v", err)
		return nil, err
	}

	doctor.ImageURL = ""
	resp := converter.DoctorToResponse(doctor)
	return &resp, nil
}

// attach saves the binary through the attachment store and persists only
// the filename reference on the doctor record.
func (u *doctorUsecase) attach(ctx context.Context, doctorID uuid.UUID, column, filename string, content io.Reader) (*dto.DoctorResponse, error) {
	if filename == "" {
		return nil, ErrEmptyAttachment
	}

	if err := u.attachmentStore.Save(ctx, filename, content); err != nil {
		u.log.Warnf("Failed to save attachment %s: %+v", filename, err)
		return nil, err
	}

	rows, err := u.doctorRepo.UpdateAttachment(u.db.WithContext(ctx), doctorID, column, filename)
	if err != nil {
		u.log.Warnf("Failed to update attachment reference: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrDoctorNotFound
	}

	return u.GetMyProfile(ctx, doctorID)
}
