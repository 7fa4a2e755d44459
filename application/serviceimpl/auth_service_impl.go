package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/config"
	"desa-profil-backend/pkg/logger"
	"desa-profil-backend/pkg/utils"
	"desa-profil-backend/pkg/validation"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig
}

func NewAuthService(userRepo repositories.UserRepository, jwtCfg config.JWTConfig, adminCfg config.AdminConfig) services.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		adminCfg: adminCfg,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Auth("login_failed", "unknown email", map[string]interface{}{"email": req.Email})
			return nil, ErrInvalidCredentials
		}
		return nil, apperr.NewPersistence("auth.login", err)
	}

	if !user.IsActive {
		logger.Auth("login_failed", "inactive account", map[string]interface{}{"email": req.Email})
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.Auth("login_failed", "wrong password", map[string]interface{}{"email": req.Email})
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.FullName, user.Role, s.jwtCfg.Secret, tokenTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user.ID, user); err != nil {
		// Login still succeeds; last_login is best effort.
		logger.AuthError("login", "failed to record last login", err, map[string]interface{}{"user_id": user.ID})
	}

	logger.Auth("login", "admin logged in", map[string]interface{}{"email": user.Email})

	return &dto.LoginResponse{
		Token: token,
		User:  *dto.UserToResponse(user),
	}, nil
}

func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("user")
		}
		return nil, apperr.NewPersistence("auth.get_current_user", err)
	}
	return dto.UserToResponse(user), nil
}

func (s *AuthServiceImpl) SeedAdmin(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return apperr.NewPersistence("auth.seed_admin", err)
	}
	if count > 0 {
		return nil
	}
	if s.adminCfg.Password == "" {
		logger.StartupWarn("seed_admin", "no admin password configured, skipping seed", nil)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:    s.adminCfg.Email,
		Password: string(hashed),
		FullName: s.adminCfg.FullName,
		Role:     "admin",
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return apperr.NewPersistence("auth.seed_admin", err)
	}

	logger.Startup("seed_admin", "seeded initial admin account", map[string]interface{}{"email": admin.Email})
	return nil
}
