package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"adagency/internal/app/config"
	"adagency/internal/app/ds"
	"adagency/internal/app/dto"
	"adagency/internal/app/middleware"
	"adagency/internal/app/redis"
	"adagency/internal/app/repository"
	"adagency/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      cfg,
	}
}

// IssueToken signs a JWT for the user with their role claim.
func (h *AuthHandler) IssueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "agency-backend",
		},
		UserID: user.ID,
		Role:   role.Role(user.Role.Name),
	})

	return token.SignedString([]byte(h.Config.JWT.Secret))
}

// Authenticate checks email+password against the store.
func (h *AuthHandler) Authenticate(ctx context.Context, email, password string) (*ds.User, error) {
	user, err := h.Repository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}
	return user, nil
}

// CreateAccount registers a new user with the default "user" role.
func (h *AuthHandler) CreateAccount(ctx context.Context, req dto.RegisterRequest) (*ds.User, error) {
	exists, _ := h.Repository.UserExistsByEmail(ctx, req.Email)
	if exists {
		return nil, errors.New("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	userRole, err := h.Repository.GetRoleByName(ctx, string(role.User))
	if err != nil {
		return nil, err
	}

	user := &ds.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		RoleID:       userRole.ID,
	}
	if err := h.Repository.CreateUser(ctx, user); err != nil {
		logrus.Error("Error creating user: ", err)
		return nil, errors.New("failed to register user")
	}
	user.Role = *userRole

	return user, nil
}

func userToDTO(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		Phone:       user.Phone,
		CompanyName: user.CompanyName,
		Role:        user.Role.Name,
	}
}

// RegisterUser creates a new account
// @Summary Sign up
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.CreateAccount(ctx.Request.Context(), request)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	accessToken, err := h.IssueToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "user registered successfully",
		Data: dto.LoginResponse{
			UserID:    user.ID,
			Token:     accessToken,
			TokenType: "Bearer",
			ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
			User:      userToDTO(user),
		},
	})
}

// LoginUser authenticates a user
// @Summary Log in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login data"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Authenticate(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	accessToken, err := h.IssueToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "login successful",
		Data: dto.LoginResponse{
			UserID:    user.ID,
			Token:     accessToken,
			TokenType: "Bearer",
			ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
			User:      userToDTO(user),
		},
	})
}

// LogoutUser revokes the current token
// @Summary Log out
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Secret), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Blacklist for whatever lifetime the token has left.
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		err = h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "logged out successfully",
	})
}

// GetUserProfile returns the current user
// @Summary Get profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, _, err := middleware.UserFromContext(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	user, err := h.Repository.GetUserByID(ctx.Request.Context(), userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user not found"))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    userToDTO(user),
	})
}

// UpdateProfile updates the current user's details
// @Summary Update profile
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	userID, _, err := middleware.UserFromContext(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.CompanyName != "" {
		updates["company_name"] = req.CompanyName
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.Country != "" {
		updates["country"] = req.Country
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) == 0 {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("nothing to update"))
		return
	}

	if err := h.Repository.UpdateUser(ctx.Request.Context(), userID, updates); err != nil {
		logrus.Error("Error updating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("failed to update profile"))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "profile updated successfully",
	})
}

func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, dto.APIResponse{
		Success: false,
		Message: err.Error(),
	})
}
