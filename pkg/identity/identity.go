// Package identity carries the resolved caller of a request. The engine
// trusts the token contents fully; authentication lives at the boundary.
package identity

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// Identity is what every guard in the workflow engine evaluates against.
type Identity struct {
	TenantID    uint   `json:"tenant_id"`
	UserID      uint   `json:"user_id"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	DisplayName string `json:"display_name"`
}

func (id Identity) IsManager() bool { return id.Role == "Manager" }

// SameDepartment compares department labels the way the UI always has:
// trimmed, case-insensitive.
func (id Identity) SameDepartment(dept string) bool {
	return fold(id.Department) != "" && fold(id.Department) == fold(dept)
}

// MatchesName compares the identity's display name against a plan's
// auditor_name. Name matching is a compatibility contract inherited from
// the existing data; plans store a free-text auditor name, not a user id.
func (id Identity) MatchesName(name string) bool {
	return fold(id.DisplayName) != "" && fold(id.DisplayName) == fold(name)
}

func fold(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

type claims struct {
	TenantID   uint   `json:"tenant_id"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Name       string `json:"name"`
	jwt.StandardClaims
}

// Sign mints a token for id, valid for ttl.
func Sign(id Identity, secret string, ttl time.Duration) (string, error) {
	c := claims{
		TenantID:   id.TenantID,
		Role:       id.Role,
		Department: id.Department,
		Name:       id.DisplayName,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatUint(uint64(id.UserID), 10),
			ExpiresAt: time.Now().Add(ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// Parse verifies a token and rebuilds the Identity it carries.
func Parse(token, secret string) (Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	sub, _ := strconv.ParseUint(c.Subject, 10, 64)
	return Identity{
		TenantID:    c.TenantID,
		UserID:      uint(sub),
		Role:        c.Role,
		Department:  c.Department,
		DisplayName: c.Name,
	}, nil
}

const ctxKey = "identity"

// Store puts id in the echo context for downstream handlers.
func Store(c echo.Context, id Identity) { c.Set(ctxKey, id) }

// From pulls the identity set by the middleware; ok is false on
// unauthenticated routes.
func From(c echo.Context) (Identity, bool) {
	id, ok := c.Get(ctxKey).(Identity)
	return id, ok
}
