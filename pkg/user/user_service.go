package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils/mailing"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Compared against when the username does not exist, so the unauthorized
// path costs the same whether the user is unknown or the password is wrong.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Authenticate(ctx context.Context, username string, password string) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	existing, err := s.userRepository.GetUserByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}
	if existing != nil {
		return domain.RegisterResponse{}, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	// Welcome mail is best effort; registration never fails on SMTP trouble.
	if utils.GetConfig("SMTP_HOST") != "" {
		body := fmt.Sprintf("<p>Hi %s, your account is ready.</p>", user.Username)
		if err := mailing.SendMail(user.Email, "Welcome", body); err != nil {
			log.Printf("error sending welcome mail to %s: %v", user.Email, err)
		}
	}

	return domain.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(fmt.Sprint(user.ID), domain.RoleUser)

	return domain.LoginResponse{
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

// Authenticate yields the same ErrInvalidCredentials for an unknown username
// and for a wrong password.
func (s *userService) Authenticate(ctx context.Context, username string, password string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
