package authController

import (
	"context"
	"errors"

	"lunara/internal/database"
	"lunara/internal/logger"
	. "lunara/internal/models"
	"lunara/internal/repositories"
	"lunara/internal/services"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=8"`
	FirstName   string `json:"firstName"   validate:"max=100"`
	LastName    string `json:"lastName"    validate:"max=100"`
	DisplayName string `json:"displayName" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	User  *User
	Token string
}

type AuthController struct {
	userRepo    repositories.UserRepository
	authService *services.AuthService
	db          database.DB
	validate    *validator.Validate
	log         logger.Logger
}

type AuthControllerInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) AuthControllerInterface {
	return &AuthController{
		userRepo:    repos.User,
		authService: services.Auth,
		db:          db,
		validate:    validator.New(),
		log:         logger.New("authController"),
	}
}

func (c *AuthController) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	log := c.log.Function("Register")

	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}

	_, err := c.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != gorm.ErrRecordNotFound {
		return nil, log.Err("failed to check existing email", err)
	}

	hash, err := c.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.FirstName
	}

	user := &User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DisplayName:  displayName,
		IsActive:     true,
	}
	user.RecordLogin()

	if err := c.userRepo.Create(ctx, user); err != nil {
		return nil, log.Err("failed to create user", err, "email", req.Email)
	}

	token, err := c.authService.IssueToken(user)
	if err != nil {
		return nil, err
	}

	log.Info("user registered", "userID", user.ID)

	return &AuthResult{User: user, Token: token}, nil
}

func (c *AuthController) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	log := c.log.Function("Login")

	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := c.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, log.Err("failed to get user by email", err)
	}

	if !user.IsActive || !c.authService.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	user.RecordLogin()
	if err := c.userRepo.Update(ctx, user); err != nil {
		log.Warn("failed to record login time", "userID", user.ID, "error", err)
	}

	token, err := c.authService.IssueToken(user)
	if err != nil {
		return nil, err
	}

	log.Info("user logged in", "userID", user.ID)

	return &AuthResult{User: user, Token: token}, nil
}
