package services

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolpay/internal/models/db_models"
	"schoolpay/internal/models/request_models"
	"schoolpay/internal/models/response_models"
	"schoolpay/internal/repositories"
	"schoolpay/pkg/logger"
	"schoolpay/pkg/utils"
)

type AccountService interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, request request_models.ChangePasswordRequest) error
}

type accountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

func validPassword(password string) bool {
	return lowerPattern.MatchString(password) &&
		upperPattern.MatchString(password) &&
		digitPattern.MatchString(password)
}

func (a *accountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	if !usernamePattern.MatchString(request.Username) {
		return nil, utils.ErrInvalidUsername
	}
	if !validPassword(request.Password) {
		return nil, utils.ErrWeakPassword
	}

	role := db_models.UserRole(request.Role)
	if role == "" {
		role = db_models.RoleUser
	}
	if role == db_models.RoleSchoolAdmin && request.SchoolID == "" {
		return nil, utils.ErrSchoolIDRequired
	}

	if existing, err := a.userRepo.FindByEmail(ctx, request.Email); err != nil {
		return nil, utils.ErrDatabaseError
	} else if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}
	if existing, err := a.userRepo.FindByUsername(ctx, request.Username); err != nil {
		return nil, utils.ErrDatabaseError
	} else if existing != nil {
		return nil, utils.ErrUsernameAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		SchoolID:     request.SchoolID,
		IsActive:     true,
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	logger.Log.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response_models.AuthResponse{User: user, Token: token}, nil
}

func (a *accountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDeactivated
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := a.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Log.Warn("failed to update last_login", zap.Error(err))
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{User: user, Token: token}, nil
}

func (a *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	return user, nil
}

func (a *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.Username != "" && request.Username != user.Username {
		if !usernamePattern.MatchString(request.Username) {
			return nil, utils.ErrInvalidUsername
		}
		existing, err := a.userRepo.FindByUsername(ctx, request.Username)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrUsernameAlreadyExists
		}
		user.Username = request.Username
	}

	if request.Email != "" && request.Email != user.Email {
		existing, err := a.userRepo.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrEmailAlreadyExists
		}
		user.Email = request.Email
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (a *accountService) ChangePassword(ctx context.Context, userID uuid.UUID, request request_models.ChangePasswordRequest) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}
	if !validPassword(request.NewPassword) {
		return utils.ErrWeakPassword
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user.PasswordHash = hashed
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
