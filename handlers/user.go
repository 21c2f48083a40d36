// File: handlers/user.go
package handlers

import (
	"net/http"

	userSvc "slotify/services/user"
	"slotify/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes registration, login and profile endpoints.
type UserHandler struct {
	Service    userSvc.UserService
	Cloudinary *cloudinary.Cloudinary
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc userSvc.UserService, cld *cloudinary.Cloudinary) *UserHandler {
	return &UserHandler{Service: svc, Cloudinary: cld}
}

// RegisterHandler handles POST /api/users/register. It accepts a multipart
// form with an optional profile image under the "image" field.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	input := userSvc.RegistrationInput{
		Email:       c.PostForm("email"),
		Password:    c.PostForm("password"),
		Name:        c.PostForm("name"),
		Role:        c.PostForm("role"),
		HourlyRate:  c.PostForm("hourlyRate"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phoneNumber"),
	}

	// Upload the profile image first so the stored account already carries
	// its URL; roll the upload back if registration fails.
	var imagePublicID string
	if fileHeader, err := c.FormFile("image"); err == nil && h.Cloudinary != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read profile image", "details": err.Error()})
			return
		}
		defer file.Close()

		url, publicID, err := utils.UploadProfileImage(c.Request.Context(), h.Cloudinary, file)
		if err != nil {
			logger.Error("Profile image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload profile image"})
			return
		}
		input.Image = url
		imagePublicID = publicID
	}

	usr, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		if imagePublicID != "" {
			if delErr := utils.DeleteProfileImage(c.Request.Context(), h.Cloudinary, imagePublicID); delErr != nil {
				logger.Warn("Failed to roll back profile image", zap.String("publicID", imagePublicID), zap.Error(delErr))
			}
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/users/me for the authenticated account.
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	usr, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ProviderProfileHandler handles GET /api/users/providers/:id, returning the
// provider's public profile.
func (h *UserHandler) ProviderProfileHandler(c *gin.Context) {
	profile, err := h.Service.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
