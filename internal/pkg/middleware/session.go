package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"vitrine/internal/pkg/token"
)

// SessionCookieName é o nome do cookie que carrega o JWT de sessão do carrinho.
const SessionCookieName = "vitrine_session"

// ContextKey é um tipo próprio para as chaves de contexto do middleware.
// Usamos um tipo int para garantir que a chave seja única e não haja conflito
// com outras chaves string.
type ContextKey int

const (
	SessionIDKey ContextKey = iota
)

// TokenService define o contrato de sessão necessário para o middleware.
type TokenService interface {
	GenerateSessionToken(sessionID string) (string, error)
	ValidateSessionToken(tokenString string) (*token.SessionClaims, error)
}

// NewSessionMiddleware cria o middleware que garante uma sessão de carrinho
// para toda requisição: valida o cookie existente ou emite um novo.
// Diferente de um middleware de autenticação, ele nunca rejeita a
// requisição — um token inválido/expirado apenas gera uma sessão nova
// (e, com ela, um carrinho vazio).
func NewSessionMiddleware(tokenSvc TokenService, expiry time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// 1. Tentar recuperar a sessão do cookie
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				if claims, err := tokenSvc.ValidateSessionToken(cookie.Value); err == nil {
					ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			// 2. Sem sessão válida: criar uma nova e emitir o cookie
			sessionID := uuid.New().String()
			tokenString, err := tokenSvc.GenerateSessionToken(sessionID)
			if err != nil {
				http.Error(w, "Falha ao iniciar sessão", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    tokenString,
				Path:     "/",
				Expires:  time.Now().Add(expiry),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionIDFromContext é a função utilitária para extrair a sessão no handler.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
