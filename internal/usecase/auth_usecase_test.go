package usecase

import (
	"context"
	"testing"

	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"
	domainRepo "clinic-directory/internal/domain/repository"
	"clinic-directory/internal/repository"
	"clinic-directory/pkg/jwt"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AuthUsecaseSuite struct {
	suite.Suite
	db           *gorm.DB
	jwtService   *jwt.JWTService
	sessionStore domainRepo.SessionStore
	usecase      AuthUsecase
}

func TestAuthUsecaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUsecaseSuite))
}

func (s *AuthUsecaseSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.jwtService = newTestJWTService()
	s.sessionStore = newTestSessionStore()
	s.usecase = NewAuthUsecase(s.db, newTestLogger(), repository.NewAdminRepository(), repository.NewPatientRepository(), s.jwtService, s.sessionStore)
}

func (s *AuthUsecaseSuite) registerAdmin() *dto.AdminAuthResponse {
	result, err := s.usecase.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Username: "root",
		Password: "password123",
	})
	s.Require().NoError(err)
	return result
}

func (s *AuthUsecaseSuite) TestRegisterAdmin() {
	result := s.registerAdmin()
	s.Equal("root", result.Admin.Username)
	s.NotEmpty(result.Token)
}

func (s *AuthUsecaseSuite) TestRegisterAdminDuplicateUsername() {
	s.registerAdmin()

	_, err := s.usecase.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Username: "root",
		Password: "other-password",
	})
	s.ErrorIs(err, ErrUsernameAlreadyExists)
}

func (s *AuthUsecaseSuite) TestLoginAdmin() {
	s.registerAdmin()

	result, err := s.usecase.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Username: "root",
		Password: "password123",
	})
	s.Require().NoError(err)
	s.NotEmpty(result.Token)

	_, err = s.usecase.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Username: "root",
		Password: "wrong",
	})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.usecase.LoginAdmin(context.Background(), &dto.AdminLoginRequest{
		Username: "ghost",
		Password: "password123",
	})
	s.ErrorIs(err, ErrAdminNotFound)
}

func (s *AuthUsecaseSuite) TestRegisterPatient() {
	result, err := s.usecase.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:        "John",
		Surname:     "Doe",
		Email:       "john@example.com",
		Password:    "password123",
		DateOfBirth: "1990-04-12",
		Gender:      entity.GenderMale,
	})
	s.Require().NoError(err)
	s.Equal("john@example.com", result.Patient.Email)
	s.Equal(1990, result.Patient.DateOfBirth.Year())
	s.NotEmpty(result.Token)
}

func (s *AuthUsecaseSuite) TestRegisterPatientInvalidDate() {
	_, err := s.usecase.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:        "John",
		Surname:     "Doe",
		Email:       "john@example.com",
		Password:    "password123",
		DateOfBirth: "12/04/1990",
		Gender:      entity.GenderMale,
	})
	s.ErrorIs(err, ErrInvalidDateFormat)
}

func (s *AuthUsecaseSuite) TestLogoutRevokesSession() {
	registered := s.registerAdmin()

	claims, err := s.jwtService.ValidateToken(registered.Token)
	s.Require().NoError(err)

	exists, err := s.sessionStore.Exists(context.Background(), entity.RoleAdmin, claims.SubjectID.String(), claims.TokenID)
	s.Require().NoError(err)
	s.True(exists)

	err = s.usecase.Logout(context.Background(), entity.RoleAdmin, claims.SubjectID.String(), claims.TokenID)
	s.Require().NoError(err)

	exists, err = s.sessionStore.Exists(context.Background(), entity.RoleAdmin, claims.SubjectID.String(), claims.TokenID)
	s.Require().NoError(err)
	s.False(exists)
}
