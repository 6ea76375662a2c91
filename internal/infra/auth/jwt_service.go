package auth

import (
	"time"

	"cafe/config"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionClaims is the JWT payload: the registered subject plus email and role.
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	svc, err := newJWTService(cfg.SecretKey.Token, ttl, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs the claims; the token expires exactly ttl after the current instant.
func (s *jwtService) Issue(claims service.TokenClaims) (string, error) {
	issuedAt := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: claims.Email,
		Role:  claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiry and classifies every failure.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, &service.TokenError{Reason: service.TokenMalformed, Err: errors.Wrap(err, "invalid subject")}
	}

	role := entity.Role(claims.Role)
	if claims.Email == "" || !role.IsValid() {
		return nil, &service.TokenError{Reason: service.TokenMalformed, Err: errors.New("missing email or role claim")}
	}

	return &service.TokenClaims{
		SubjectID: subjectID,
		Email:     claims.Email,
		Role:      role,
	}, nil
}

func classifyTokenError(err error) *service.TokenError {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &service.TokenError{Reason: service.TokenMalformed, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return &service.TokenError{Reason: service.TokenExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return &service.TokenError{Reason: service.TokenInvalidSignature, Err: err}
	default:
		// Remaining claim failures (missing exp, iat in the future) mean the token was not ours to accept.
		return &service.TokenError{Reason: service.TokenMalformed, Err: err}
	}
}
