package service

import (
	"context"
	"fmt"
	"studyspot/infras/otel"
	"studyspot/internal/domains/identity/model"
	"studyspot/internal/domains/identity/model/dto"
	"studyspot/internal/domains/identity/repository"
	"studyspot/shared"
	"studyspot/shared/constant"
	"studyspot/shared/failure"

	"github.com/rs/zerolog/log"
)

type Identity interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AccountResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AccountResponse, error)
	QuickLogin(ctx context.Context, req dto.QuickLoginRequest) (dto.AccountResponse, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (dto.SessionResponse, error)
	GetUserByEmail(ctx context.Context, email string) (dto.AccountResponse, error)
	GetAllUsers(ctx context.Context) (dto.GetAccountsResponse, error)
	GetAllRegisteredUsers(ctx context.Context) (dto.GetAccountsResponse, error)
	GetDemoUsers(ctx context.Context) (dto.GetAccountsResponse, error)
}

type serviceImpl struct {
	repo repository.Identity
	otel otel.Otel
}

func New(repo repository.Identity, ot otel.Otel) Identity {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

// Register creates a new account and adopts it as the current session.
// Email uniqueness is enforced among registered accounts only; the demo
// seed is exempt.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	accounts, err := s.repo.GetAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load accounts")

		return res, fmt.Errorf("failed to load accounts: %w", err)
	}

	email := shared.NormalizeEmail(req.Email)
	for _, account := range accounts {
		if account.Email == email {
			return res, failure.Conflict("email already registered") // nolint:wrapcheck
		}
	}

	account := req.ToModel()

	if err = s.repo.SaveAccounts(ctx, append(accounts, account)); err != nil {
		log.Error().Err(err).Msg("failed to save account registry")

		return res, fmt.Errorf("failed to save account registry: %w", err)
	}

	if err = s.repo.SetSession(ctx, account); err != nil {
		log.Error().Err(err).Msg("failed to set session")

		return res, fmt.Errorf("failed to set session: %w", err)
	}

	res.FromModel(account)

	return res, nil
}

// Login resolves a registered account by exact email match and adopts it as
// the session. There is no credential secret; the lookup is the whole check.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	accounts, err := s.repo.GetAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load accounts")

		return res, fmt.Errorf("failed to load accounts: %w", err)
	}

	email := shared.NormalizeEmail(req.Email)
	for _, account := range accounts {
		if account.Email == email {
			if err = s.repo.SetSession(ctx, account); err != nil {
				log.Error().Err(err).Msg("failed to set session")

				return res, fmt.Errorf("failed to set session: %w", err)
			}

			res.FromModel(account)

			return res, nil
		}
	}

	log.Warn().Str("email", email).Msg("login attempt with unknown email")

	return res, failure.NotFound("no account found with this email") // nolint:wrapcheck
}

// QuickLogin adopts an already-known account object as the session without
// registry validation, serving the one-click demo login path.
func (s *serviceImpl) QuickLogin(ctx context.Context, req dto.QuickLoginRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuickLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	account := req.ToModel()

	if err = s.repo.SetSession(ctx, account); err != nil {
		log.Error().Err(err).Msg("failed to set session")

		return res, fmt.Errorf("failed to set session: %w", err)
	}

	res.FromModel(account)

	return res, nil
}

// Logout clears the session only. Bookings belong to the account, not the
// session, and survive logout.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.ClearSession(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Session(ctx context.Context) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, ok, err := s.repo.GetSession(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session")

		return res, fmt.Errorf("failed to load session: %w", err)
	}

	if !ok {
		return dto.SessionResponse{Authenticated: false}, nil
	}

	accountRes := dto.AccountResponse{}
	accountRes.FromModel(account)

	return dto.SessionResponse{Authenticated: true, Account: &accountRes}, nil
}

func (s *serviceImpl) GetUserByEmail(ctx context.Context, email string) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	accounts, err := s.repo.GetAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load accounts")

		return res, fmt.Errorf("failed to load accounts: %w", err)
	}

	email = shared.NormalizeEmail(email)
	for _, account := range accounts {
		if account.Email == email {
			res.FromModel(account)

			return res, nil
		}
	}

	return res, failure.NotFound("no account found with this email") // nolint:wrapcheck
}

// GetAllUsers returns the demo seed followed by every registered account.
func (s *serviceImpl) GetAllUsers(ctx context.Context) (res dto.GetAccountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	accounts, err := s.repo.GetAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load accounts")

		return res, fmt.Errorf("failed to load accounts: %w", err)
	}

	res.FromModels(append(model.DemoAccounts(), accounts...))

	return res, nil
}

func (s *serviceImpl) GetAllRegisteredUsers(ctx context.Context) (res dto.GetAccountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRegisteredUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	accounts, err := s.repo.GetAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load accounts")

		return res, fmt.Errorf("failed to load accounts: %w", err)
	}

	res.FromModels(accounts)

	return res, nil
}

func (s *serviceImpl) GetDemoUsers(ctx context.Context) (res dto.GetAccountsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDemoUsers")
	defer scope.End()

	res.FromModels(model.DemoAccounts())

	return res, nil
}
