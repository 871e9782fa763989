package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/dto"
	"github.com/trf-online/trf-backend/internal/middleware"
	"github.com/trf-online/trf-backend/internal/utils"
)

type userService struct {
	userRepo     portsrepo.UserRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewUserService creates the login account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, employeeRepo: employeeRepo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if !req.Role.Valid() {
		return nil, apperrors.NewAppError(400, "unknown role "+string(req.Role), apperrors.ErrValidation)
	}
	if req.Role == domain.RoleEmployee && req.EmployeeID == nil {
		return nil, apperrors.NewAppError(400, "employeeId is required for EMPLOYEE accounts", apperrors.ErrValidation)
	}
	if req.Role.RequiresDepartment() && (req.Department == nil || *req.Department == "") {
		return nil, apperrors.NewAppError(400, "department is required for role "+string(req.Role), apperrors.ErrValidation)
	}
	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.FindEmployeeByID(ctx, *req.EmployeeID); err != nil {
			return nil, fmt.Errorf("failed to resolve employee for new user: %w", err)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
		EmployeeID:   req.EmployeeID,
		Department:   req.Department,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		// Invalid username and invalid password are indistinguishable to the
		// caller.
		logger.Warn("Login failed, user lookup", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login failed, bad password", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
