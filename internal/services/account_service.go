package services

import (
	"context"
	"strings"
	"time"

	"darwinplanner/internal/models/db_models"
	"darwinplanner/internal/models/request_models"
	"darwinplanner/internal/models/response_models"
	"darwinplanner/internal/repositories"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (response_models.AccountLoginResponse, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) error
	GetAccount(id string, ctx context.Context) (response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	tokenTTL    time.Duration
	log         *logger.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, tokenTTL time.Duration, log *logger.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (response_models.AccountLoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.log.Error("finding account", "error", err)
		return response_models.AccountLoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.jwt.CreateToken(account.ID, account.Role)
	if err != nil {
		a.log.Error("signing token", "account_id", account.ID, "error", err)
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	a.log.Debug("login", "account_id", account.ID, "took", time.Since(startTime))

	return response_models.AccountLoginResponse{
		Token:     token,
		ExpiresIn: int64(a.tokenTTL.Seconds()),
	}, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) error {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("finding account", "error", err)
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         utils.RoleUser,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		a.log.Error("inserting account", "error", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetAccount(id string, ctx context.Context) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		a.log.Error("finding account", "account_id", id, "error", err)
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	return response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
