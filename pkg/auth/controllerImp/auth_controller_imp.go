package controllerImp

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"audir/pkg/auth/controller"
	"audir/pkg/identity"
	repo "audir/pkg/userdir/repository"
)

type authCtrl struct {
	users  repo.UserRepository
	secret string
	ttl    time.Duration
}

func New(users repo.UserRepository, secret string, ttlMin int) controller.AuthController {
	return &authCtrl{users: users, secret: secret, ttl: time.Duration(ttlMin) * time.Minute}
}

// HashPassword is the stored credential form. Credential issuance itself is
// an external concern; the engine only needs a comparable opaque hash.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

type loginReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Username))
	if email == "" {
		email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing credentials"})
	}
	u, err := h.users.FindByEmailAnyTenant(email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid login"})
	}
	hash := HashPassword(req.Password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(u.PasswordHash)) != 1 {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid login"})
	}
	id := identity.Identity{
		TenantID:    u.TenantID,
		UserID:      u.ID,
		Role:        u.Role,
		Department:  u.Department,
		DisplayName: u.FullName(),
	}
	token, err := identity.Sign(id, h.secret, h.ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	_ = h.users.TouchLastActive(u)
	return c.JSON(http.StatusOK, map[string]string{"access_token": token, "token_type": "bearer"})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	return c.JSON(http.StatusOK, id)
}
