package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/mcycle/internal/models"
)

const contextUserKey = "user"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildToken(user *models.User) (string, error) {
	now := handler.now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseToken(raw string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return handler.secretKey, nil
	}, jwt.WithTimeFunc(handler.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

func bearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errMissingToken
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errMissingToken
	}
	return value, nil
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	raw, err := bearerToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := handler.parseToken(raw)
	if err != nil {
		return nil, err
	}
	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthRequired resolves the bearer token to a user and stores it in the
// request locals.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}
