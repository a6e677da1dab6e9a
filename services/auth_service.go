package services

import (
	"errors"
	"time"

	"headless-cms/config"
	"headless-cms/models"
	"headless-cms/repositories"
	"headless-cms/validators"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	validate *validators.Validator
	logger   zerolog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, validate *validators.Validator, logger zerolog.Logger) AuthService {
	return &authService{userRepo: userRepo, validate: validate, logger: logger}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validate.Email(req.Email); err != nil {
		return nil, err
	}
	if err := s.validate.Password(req.Password, models.OperationCreate); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existing != nil {
		return nil, errors.New("user already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Roles:    models.RoleList{models.RoleEditor},
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// First account on an empty collection becomes the admin. The repository
	// makes the count-and-promote a single conditional write.
	if !user.IsAdmin() {
		promoted, err := s.userRepo.PromoteFirstAdmin(user.ID)
		if err != nil {
			return nil, err
		}
		if promoted {
			user.Roles = models.RoleList{models.RoleAdmin}
			s.logger.Info().Str("email", user.Email).Msg("first user promoted to admin")
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = string(role)
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"roles":   roles,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
