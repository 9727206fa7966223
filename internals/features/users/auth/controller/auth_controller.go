// 📁 controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "estagios_backend/internals/features/users/auth/dto"
	authModel "estagios_backend/internals/features/users/auth/model"
	authService "estagios_backend/internals/features/users/auth/service"
	userModel "estagios_backend/internals/features/users/user/model"
	helper "estagios_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// 🟢 REGISTER: cria usuário com role ADMIN/STUDENT/COMPANY
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: hash,
		UserRole:     req.UserRole,
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.Error(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário criado com sucesso", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"user_role": user.UserRole,
	})
}

// 🟢 LOGIN: valida credenciais e emite access + refresh token
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", req.UserEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Sua conta foi desativada")
	}

	if !authService.CheckPassword(user.UserPassword, req.UserPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	access, err := authService.GenerateAccessToken(user.UserID, user.UserName, user.UserRole)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}
	refresh, err := authService.GenerateRefreshToken(user.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar refresh token")
	}

	return helper.Success(c, "Login realizado com sucesso", authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.UserID.String(),
		UserName:     user.UserName,
		UserRole:     user.UserRole,
	})
}

// 🟢 REFRESH: troca refresh token válido por novo par de tokens
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req authDTO.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Sua conta foi desativada")
	}

	access, err := authService.GenerateAccessToken(user.UserID, user.UserName, user.UserRole)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}
	refresh, err := authService.GenerateRefreshToken(user.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar refresh token")
	}

	return helper.Success(c, "Token renovado", authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.UserID.String(),
		UserName:     user.UserName,
		UserRole:     user.UserRole,
	})
}

// 🟢 LOGOUT: coloca o access token atual na blacklist
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helper.Error(c, fiber.StatusBadRequest, "Token ausente")
	}
	tokenString := strings.TrimSpace(parts[1])

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(authService.AccessTokenTTL),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			// já estava na blacklist; logout idempotente
			return helper.Success(c, "Logout realizado", nil)
		}
		log.Println("[ERROR] Falha ao registrar blacklist:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao realizar logout")
	}

	return helper.Success(c, "Logout realizado", nil)
}
