package controllers

import (
	"errors"
	"net/http"

	"github.com/Div1912/Spice-Bite/pkg/resp"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Register(req.Email, req.Password, req.Name, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "name": user.Name,
			"phoneNumber": user.PhoneNumber, "role": user.Role,
		},
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "name": user.Name,
			"phoneNumber": user.PhoneNumber, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := a.Auth.GetProfile(uid)
	if err != nil {
		resp.Unauthorized(c, "user not found")
		return
	}
	resp.OK(c, user)
}

type UpdateMeRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	AvatarURL   *string `json:"avatarUrl"`
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := a.Auth.UpdateProfile(uid, updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
