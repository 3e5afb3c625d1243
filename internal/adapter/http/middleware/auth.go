package middleware

import (
	"strings"
	"time"

	"valuation_report/internal/domain/entities"
	"valuation_report/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const actorContextKey = "valuation.actor"

// Claims is the token payload issued by the identity provider.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for actor.
func GenerateToken(secret string, actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: actor.ID,
		Name:   actor.Name,
		Role:   string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "valuation-report",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates an HS256 token and returns the actor it carries.
func ParseToken(secret, tokenString string) (entities.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Actor{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.Actor{}, jwt.ErrTokenInvalidClaims
	}
	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}
	return entities.Actor{ID: id, Name: claims.Name, Role: entities.ParseRole(claims.Role)}, nil
}

// Actor resolves the caller from the Authorization header. Requests without a
// valid bearer token continue as the anonymous actor.
func Actor(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := entities.Actor{}
		header := c.GetHeader("Authorization")
		if raw, ok := strings.CutPrefix(header, "Bearer "); ok && strings.TrimSpace(raw) != "" {
			parsed, err := ParseToken(secret, strings.TrimSpace(raw))
			if err != nil {
				logger.L().Debug("[auth][middleware] invalid token", zap.String("path", c.FullPath()), zap.Error(err))
			} else {
				actor = parsed
			}
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor stored by Actor, or the anonymous actor.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}

// WithActor stores a fixed actor on the context.
func WithActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorContextKey, actor)
		c.Next()
	}
}
