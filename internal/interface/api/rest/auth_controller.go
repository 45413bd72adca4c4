package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/application/services"
	"file-manager-api/internal/interface/api/rest/middleware"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
	sessions ports.SessionStore,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.GET(RouteConnect, ac.ConnectHandler)
	r.GET(RouteDisconnect, middleware.AuthMiddleware(sessions), ac.DisconnectHandler)

	return ac
}

// ConnectHandler exchanges a Basic credential for a session token. Every
// failure mode answers the same 401 body.
func (ac *AuthController) ConnectHandler(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok || email == "" || password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to authenticate"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ac *AuthController) DisconnectHandler(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)

	if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to end session"},
		)
		ac.logger.Error("Logout() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
