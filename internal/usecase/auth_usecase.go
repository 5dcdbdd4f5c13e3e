package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-directory/internal/converter"
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"
	"clinic-directory/internal/domain/repository"
	"clinic-directory/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid identifier or password")
	ErrAdminNotFound         = errors.New("admin not found")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
)

// AuthUsecase issues and verifies credentials for admins and patients.
// Doctor registration lives in DoctorUsecase because it also resolves the
// shared reference entities.
type AuthUsecase interface {
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.AdminAuthResponse, error)
	LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminAuthResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientAuthResponse, error)
	LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.PatientAuthResponse, error)
	Logout(ctx context.Context, role string, subjectID, tokenID string) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminRepository
	patientRepo  repository.PatientRepository
	jwtService   *jwt.JWTService
	sessionStore repository.SessionStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	sessionStore repository.SessionStore,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		patientRepo:  patientRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

func (u *authUsecase) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.AdminAuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	admin := &entity.Admin{
		Username: req.Username,
		Password: string(hashedPassword),
	}

	if err := u.adminRepo.Create(u.db.WithContext(ctx), admin); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, err
	}

	token, err := u.issueSession(ctx, entity.RoleAdmin, admin.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AdminAuthResponse{
		Admin: converter.AdminToResponse(admin),
		Token: token,
	}, nil
}

func (u *authUsecase) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminAuthResponse, error) {
	admin, err := u.adminRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find admin by username: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueSession(ctx, entity.RoleAdmin, admin.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AdminAuthResponse{
		Admin: converter.AdminToResponse(admin),
		Token: token,
	}, nil
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientAuthResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		Password:    string(hashedPassword),
		DateOfBirth: dob,
		Gender:      req.Gender,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	token, err := u.issueSession(ctx, entity.RolePatient, patient.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PatientAuthResponse{
		Patient: converter.PatientToResponse(patient),
		Token:   token,
	}, nil
}

func (u *authUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.PatientAuthResponse, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueSession(ctx, entity.RolePatient, patient.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PatientAuthResponse{
		Patient: converter.PatientToResponse(patient),
		Token:   token,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, role string, subjectID, tokenID string) error {
	if err := u.sessionStore.Delete(ctx, role, subjectID, tokenID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) issueSession(ctx context.Context, role string, subjectID uuid.UUID) (string, error) {
	return issueSession(ctx, u.log, u.jwtService, u.sessionStore, role, subjectID)
}
