package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"
	"clinic-directory/internal/repository"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DoctorUsecaseSuite struct {
	suite.Suite
	db      *gorm.DB
	usecase DoctorUsecase
}

func TestDoctorUsecaseSuite(t *testing.T) {
	suite.Run(t, new(DoctorUsecaseSuite))
}

func (s *DoctorUsecaseSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.usecase = NewDoctorUsecase(
		s.db,
		newTestLogger(),
		repository.NewDoctorRepository(),
		repository.NewHospitalRepository(),
		repository.NewOccupationRepository(),
		newTestJWTService(),
		newTestSessionStore(),
		newTestAttachmentStore(s.T()),
	)
}

func registerRequest(email string) *dto.RegisterDoctorRequest {
	return &dto.RegisterDoctorRequest{
		Name:            "Alice",
		Surname:         "Smith",
		Email:           email,
		Password:        "password123",
		Occupation:      "Cardiologist",
		Experience:      8,
		ConsultationFee: "150.00",
		Hospital:        "General Hospital",
		City:            "Vilnius",
		Address:         "Main St 1",
	}
}

func (s *DoctorUsecaseSuite) TestRegisterStartsPending() {
	result, err := s.usecase.Register(context.Background(), registerRequest("alice@example.com"))
	s.Require().NoError(err)

	s.Equal(string(entity.AccessPending), result.Doctor.AccessState)
	s.NotEmpty(result.Token)
	s.Require().NotNil(result.Doctor.Hospital)
	s.Equal("General Hospital", result.Doctor.Hospital.Name)
	s.Require().NotNil(result.Doctor.Occupation)
	s.Equal("Cardiologist", result.Doctor.Occupation.Label)
}

func (s *DoctorUsecaseSuite) TestRegisterNeverExposesPassword() {
	result, err := s.usecase.Register(context.Background(), registerRequest("alice@example.com"))
	s.Require().NoError(err)

	raw, err := json.Marshal(result)
	s.Require().NoError(err)
	s.NotContains(strings.ToLower(string(raw)), "password")
}

func (s *DoctorUsecaseSuite) TestRegisterDuplicateEmail() {
	_, err := s.usecase.Register(context.Background(), registerRequest("alice@example.com"))
	s.Require().NoError(err)

	_, err = s.usecase.Register(context.Background(), registerRequest("alice@example.com"))
	s.ErrorIs(err, ErrDoctorEmailExists)
}

func (s *DoctorUsecaseSuite) TestRegisterRejectsInvalidFee() {
	req := registerRequest("alice@example.com")
	req.ConsultationFee = "not-a-number"
	_, err := s.usecase.Register(context.Background(), req)
	s.ErrorIs(err, ErrInvalidFeeFormat)

	req.ConsultationFee = "-10"
	_, err = s.usecase.Register(context.Background(), req)
	s.ErrorIs(err, ErrInvalidFeeFormat)
}

func (s *DoctorUsecaseSuite) TestRegisterSharesReferenceEntities() {
	_, err := s.usecase.Register(context.Background(), registerRequest("alice@example.com"))
	s.Require().NoError(err)

	_, err = s.usecase.Register(context.Background(), registerRequest("bob@example.com"))
	s.Require().NoError(err)

	var hospitalCount, occupationCount int64
	s.db.Model(&entity.Hospital{}).Count(&hospitalCount)
	s.db.Model(&entity.Occupation{}).Count(&occupationCount)
	s.Equal(int64(1), hospitalCount)
	s.Equal(int64(1), occupationCount)
}

func (s *DoctorUsecaseSuite) TestConcurrentRegistrationsShareOneHospital() {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		email := fmt.Sprintf("doctor%d@example.com", i)
		g.Go(func() error {
			_, err := s.usecase.Register(context.Background(), registerRequest(email))
			return err
		})
	}
	s.Require().NoError(g.Wait())

	var hospitalCount int64
	s.db.Model(&entity.Hospital{}).Count(&hospitalCount)
	s.Equal(int64(1), hospitalCount)

	var doctorCount int64
	s.db.Model(&entity.Doctor{}).Count(&doctorCount)
	s.Equal(int64(8), doctorCount)
}

func (s *DoctorUsecaseSuite) TestLogin() {
	_, err := s.usecase.Register(context.Background(), registerRequest("alice@example.com"))
	s.Require().NoError(err)

	result, err := s.usecase.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)
	s.NotEmpty(result.Token)

	_, err = s.usecase.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.usecase.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	s.ErrorIs(err, ErrDoctorNotFound)
}

func (s *DoctorUsecaseSuite) TestListApprovedHidesPendingAndDenied() {
	approvals := NewApprovalUsecase(s.db, newTestLogger(), repository.NewDoctorRepository())

	approved, err := s.usecase.Register(context.Background(), registerRequest("approved@example.com"))
	s.Require().NoError(err)
	denied, err := s.usecase.Register(context.Background(), registerRequest("denied@example.com"))
	s.Require().NoError(err)
	_, err = s.usecase.Register(context.Background(), registerRequest("pending@example.com"))
	s.Require().NoError(err)

	_, err = approvals.Approve(context.Background(), approved.Doctor.ID)
	s.Require().NoError(err)
	_, err = approvals.Deny(context.Background(), denied.Doctor.ID)
	s.Require().NoError(err)

	result, err := s.usecase.ListApproved(context.Background())
	s.Require().NoError(err)
	s.Equal(1, result.Total)
	s.Require().Len(result.Doctors, 1)
	s.Equal(approved.Doctor.ID, result.Doctors[0].ID)
}

func (s *DoctorUsecaseSuite) TestAttachments() {
	registered, err := s.usecase.Register(context.Background(), registerRequest("alice@example.com"))
	s.Require().NoError(err)
	doctorID := registered.Doctor.ID

	result, err := s.usecase.UploadProfilePicture(context.Background(), doctorID, "avatar.png", strings.NewReader("png-bytes"))
	s.Require().NoError(err)
	s.Equal("avatar.png", result.ImageURL)

	result, err = s.usecase.UploadCV(context.Background(), doctorID, "cv.pdf", strings.NewReader("pdf-bytes"))
	s.Require().NoError(err)
	s.Equal("cv.pdf", result.CVURL)
	s.Equal("avatar.png", result.ImageURL)

	result, err = s.usecase.DeleteProfilePicture(context.Background(), doctorID)
	s.Require().NoError(err)
	s.Empty(result.ImageURL)

	_, err = s.usecase.DeleteProfilePicture(context.Background(), doctorID)
	s.ErrorIs(err, ErrNoProfilePicture)
}
