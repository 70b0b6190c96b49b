package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"builty-service/internal/entities"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrNoActor       = errors.New("no authenticated actor in context")
)

type Claims struct {
	jwt.RegisteredClaims
	Role entities.Role `json:"role"`
}

// Authenticator issues and validates HS256 bearer tokens whose subject is the actor id.
type Authenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func New(secret, issuer string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

func (a *Authenticator) Issue(actor entities.Actor, ttl time.Duration) (string, error) {
	if actor.ID <= 0 || !actor.Role.IsValid() {
		return "", ErrInvalidClaims
	}

	now := a.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    a.issuer,
			Subject:   strconv.FormatInt(actor.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: actor.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (a *Authenticator) Parse(tokenString string) (entities.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Actor{}, ErrExpiredToken
		}
		return entities.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.Actor{}, ErrInvalidClaims
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 || !claims.Role.IsValid() {
		return entities.Actor{}, ErrInvalidClaims
	}

	return entities.Actor{ID: id, Role: claims.Role}, nil
}

type actorKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, error) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	if !ok {
		return entities.Actor{}, ErrNoActor
	}
	return actor, nil
}
