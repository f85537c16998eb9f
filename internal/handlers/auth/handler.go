package auth

import (
	"net/http"
	"studyspot/infras/otel"
	"studyspot/internal/domains/identity/model/dto"
	"studyspot/internal/domains/identity/service"
	"studyspot/shared/constant"
	"studyspot/shared/validator"
	"studyspot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Identity
	otel    otel.Otel
}

func New(service service.Identity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/quick-login", handler.QuickLogin)
		routerGroup.Post("/logout", handler.Logout)
		routerGroup.Get("/session", handler.Session)
		routerGroup.Get("/users", handler.GetUsers)
		routerGroup.Get("/users/registered", handler.GetRegisteredUsers)
		routerGroup.Get("/users/demo", handler.GetDemoUsers)
	})
}

// Register creates a new account and logs it in.
// @Summary Register a new account
// @Description Create a new account with a name and email, then start a session for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.AccountResponse] "Account created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register account")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Account registered successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// Login starts a session for a registered account.
// @Summary Log in by email
// @Description Look up a registered account by email and start a session for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.AccountResponse] "Session started"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log in")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Logged in successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// QuickLogin starts a session for a known account without any lookup.
// @Summary Quick login
// @Description Adopt the given account as the current session, typically one of the demo accounts.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.QuickLoginRequest true "Quick Login Request"
// @Success 200 {object} response.Data[dto.AccountResponse] "Session started"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/quick-login [post]
func (handler *Handler) QuickLogin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuickLogin")
	defer scope.End()

	req := dto.QuickLoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.QuickLogin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quick log in")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Quick logged in successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// Logout ends the current session.
// @Summary Log out
// @Description Clear the current session. Bookings are kept.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out"
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Logged out successfully")
}

// Session reports the current session, if any.
// @Summary Get the current session
// @Description Report whether a session is active and which account holds it.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse] "Current session"
// @Failure 500 {object} response.Error
// @Router /v1/auth/session [get]
func (handler *Handler) Session(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Session")
	defer scope.End()

	res, err := handler.service.Session(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetUsers lists every known account, demo seed included. With an email
// query it looks up the single registered account holding that email.
// @Summary Get all users
// @Description List the demo accounts followed by every registered account, or look one up by email.
// @Tags Auth
// @Produce json
// @Param email query string false "Look up a registered account by email"
// @Success 200 {object} response.Data[dto.GetAccountsResponse] "All accounts"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/users [get]
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	if email := request.URL.Query().Get(constant.RequestParamEmail); email != "" {
		account, err := handler.service.GetUserByEmail(ctx, email)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to get user by email")

			response.WithError(writer, err)

			return
		}

		response.WithJSON(writer, http.StatusOK, account)

		return
	}

	res, err := handler.service.GetAllUsers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRegisteredUsers lists the registered accounts only.
// @Summary Get registered users
// @Description List every account created through registration.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.GetAccountsResponse] "Registered accounts"
// @Failure 500 {object} response.Error
// @Router /v1/auth/users/registered [get]
func (handler *Handler) GetRegisteredUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRegisteredUsers")
	defer scope.End()

	res, err := handler.service.GetAllRegisteredUsers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get registered users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDemoUsers lists the demo seed accounts.
// @Summary Get demo users
// @Description List the built-in demo accounts available for quick login.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.GetAccountsResponse] "Demo accounts"
// @Failure 500 {object} response.Error
// @Router /v1/auth/users/demo [get]
func (handler *Handler) GetDemoUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDemoUsers")
	defer scope.End()

	res, err := handler.service.GetDemoUsers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get demo users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
