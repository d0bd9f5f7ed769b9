package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/repositories"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	pkgAuth "github.com/arda/campusconnect/internal/pkg/auth"
	"github.com/arda/campusconnect/internal/pkg/logger"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthData, error)
	Login(req *dto.LoginRequest) (*dto.AuthData, error)
	CurrentUser(userID string) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *pkgAuth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *pkgAuth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account and returns it with a signed token.
func (s *authServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthData, error) {
	ve := apperrors.NewValidationError()

	name := checkLength(ve, "name", req.Name, 2, 50)
	email := checkEmail(ve, "email", req.Email)
	if len(req.Password) < 6 {
		ve.Add("password", "password must be at least 6 characters")
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleStudent
	} else if !role.IsValid() {
		ve.Add("role", "role must be one of: student, faculty, admin")
	}

	department := checkOptionalLength(ve, "department", req.Department, 50)

	// Role-conditional fields
	var semester *int
	var employeeID *string
	switch role {
	case models.RoleStudent:
		if req.Semester == nil {
			ve.Add("semester", "semester is required for students")
		} else if *req.Semester < models.MinSemester || *req.Semester > models.MaxSemester {
			ve.Add("semester", "semester must be between 1 and 8")
		} else {
			semester = req.Semester
		}
	case models.RoleFaculty:
		if req.EmployeeID == "" {
			ve.Add("employeeId", "employee ID is required for faculty")
		} else {
			id := req.EmployeeID
			employeeID = &id
		}
	}

	if ve.HasErrors() {
		return nil, ve
	}

	hashed, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Password:   hashed,
		Role:       role,
		Department: department,
		Semester:   semester,
		EmployeeID: employeeID,
		CreatedAt:  time.Now().UTC(),
		IsActive:   true,
	}

	if err := s.userRepo.Insert(user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return &dto.AuthData{User: user.Sanitized(), Token: token}, nil
}

// Login verifies credentials, stamps lastLogin and returns a signed token.
func (s *authServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthData, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		// Same error for unknown email and wrong password
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !pkgAuth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	updated, err := s.userRepo.Mutate(user.ID, func(u *models.User) error {
		u.LastLogin = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(updated)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("userID", user.ID).Msg("User logged in")
	return &dto.AuthData{User: updated.Sanitized(), Token: token}, nil
}

// CurrentUser returns the stored user without the password hash.
func (s *authServiceImpl) CurrentUser(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}
