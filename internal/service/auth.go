package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
	"reciclame-api/internal/repo/repo_errors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   repo.User
	bcryptCost int
}

func NewAuthService(repos *repo.Repositories) *AuthService {
	return &AuthService{
		userRepo:   repos.User,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// NormalizeCpf keeps only the digits of a formatted CPF.
func NormalizeCpf(cpf string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, cpf)
}

func (s *AuthService) Login(ctx context.Context, input *entity.LoginInput) (*entity.UserOutputModel, error) {
	user, err := s.userRepo.GetUserByCpf(ctx, NormalizeCpf(input.Cpf))
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return mapUser(user), nil
}

// Register creates credentials for an existing person.
func (s *AuthService) Register(ctx context.Context, input *entity.RegisterUserInput) (*entity.UserOutputModel, error) {
	nivel := input.NivelAcesso
	if nivel == "" {
		nivel = entity.NivelUsuario
	}
	if !validNivelAcesso(nivel) {
		return nil, ErrInvalidNivelAcesso
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	cpf := NormalizeCpf(input.Cpf)
	if _, err = s.userRepo.CreateUser(ctx, cpf, string(hash), nivel); err != nil {
		return nil, mapRepoError(err, ErrPessoaNotFound)
	}

	user, err := s.userRepo.GetUserByCpf(ctx, cpf)
	if err != nil {
		return nil, mapRepoError(err, ErrUserNotFound)
	}

	return mapUser(user), nil
}

func (s *AuthService) UpdateNivelAcesso(ctx context.Context, cpf string, nivel string) error {
	if !validNivelAcesso(nivel) {
		return ErrInvalidNivelAcesso
	}

	if err := s.userRepo.UpdateNivelAcesso(ctx, NormalizeCpf(cpf), nivel); err != nil {
		return mapRepoError(err, ErrUserNotFound)
	}

	return nil
}

func validNivelAcesso(nivel string) bool {
	switch nivel {
	case entity.NivelAdm, entity.NivelUsuario, entity.NivelExterno:
		return true
	}
	return false
}
