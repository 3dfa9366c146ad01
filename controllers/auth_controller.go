package controllers

import (
	"net/http"

	apperrors "storefront-bff/errors"
	"storefront-bff/middleware"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
	cart *services.CartService
}

func NewAuthController(auth *services.AuthService, cart *services.CartService) *AuthController {
	return &AuthController{auth: auth, cart: cart}
}

// Check re-resolves the session identity against the upstream and reports it.
func (ac *AuthController) Check(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	// a failed check resolves to unauthenticated, never to an error page
	_ = ac.auth.CheckSession(c.Request.Context(), session)

	c.JSON(http.StatusOK, gin.H{
		"isLogin": session.Authenticated(),
		"user":    session.User,
	})
}

// Login submits credentials and returns the authenticated identity.
func (ac *AuthController) Login(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	user, err := ac.auth.Login(c.Request.Context(), session, req.UserID, req.Password)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout terminates the upstream session and clears the local mirror. The
// cart mirror is cleared too: a cart is tied to the session that built it.
func (ac *AuthController) Logout(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	logoutErr := ac.auth.Logout(c.Request.Context(), session)
	ac.cart.ClearLocal(c.Request.Context(), session)

	if logoutErr != nil {
		apperrors.HandleError(c, logoutErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
