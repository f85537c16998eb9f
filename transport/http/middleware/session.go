package middleware

import (
	"context"
	"net/http"
	"studyspot/infras/otel"
	"studyspot/internal/domains/identity/repository"
	"studyspot/shared/constant"
	"studyspot/shared/failure"
	"studyspot/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Session guards routes that need a logged-in user. The persisted session
// record is resolved on every request and its account id and email are put
// on the request context for handlers to read.
type Session interface {
	RequireSession(next http.Handler) http.Handler
}

type sessionImpl struct {
	identity repository.Identity
	otel     otel.Otel
}

func NewSessionMiddleware(identity repository.Identity, otel otel.Otel) Session {
	return &sessionImpl{
		identity: identity,
		otel:     otel,
	}
}

func (m *sessionImpl) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		account, ok, err := m.identity.GetSession(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve session")

			response.WithError(writer, failure.InternalError(err))

			scope.TraceError(err)
			scope.End()

			return
		}

		if !ok {
			err := failure.LoginRequired

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, account.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, account.Email)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
