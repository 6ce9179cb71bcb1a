package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
	"github.com/bhubcare/bhub-backend/utils"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// issueTokenPair creates the 24h access token and 7d refresh token returned
// by every sign-in path.
func issueTokenPair(user models.User, role models.Role) (string, string, error) {
	claims := jwt.MapClaims{
		"id":      user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // 24 hour expiration
		"role":    role.Name,
		"role_id": user.RoleID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  role.Name,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 day expiration
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	return tokenString, refreshTokenString, nil
}

// Register handles user registration
func Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		Phone           string `json:"phone"`
		DeliverTo       string `json:"deliver_to"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Email == "" || input.Password == "" || input.FirstName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if !utils.ValidateEmail(input.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email address",
		})
	}
	if input.Password != input.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Passwords do not match",
		})
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid phone number",
		})
	}

	// Check if user already exists
	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	// New accounts are always consumers; salon accounts are onboarded
	// out-of-band.
	var userRole models.Role
	if err := db.DB.Where("name = ?", models.RoleUser).First(&userRole).Error; err != nil {
		log.Printf("Error finding user role: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to assign default role",
		})
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Phone:     input.Phone,
		DeliverTo: input.DeliverTo,
		RoleID:    userRole.ID,
		Role:      userRole,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	// Remove password from response
	user.Password = ""

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Find user
	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	// Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	var role models.Role
	if err := db.DB.First(&role, user.RoleID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch role",
		})
	}

	tokenString, refreshTokenString, err := issueTokenPair(user, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"user": fiber.Map{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       role.Name,
			"role_id":    role.ID,
		},
	})
}

// googleTokenInfoURL is Google's ID token introspection endpoint. Variable
// so tests can point it at a local server.
var googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

type googleTokenInfo struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Audience      string `json:"aud"`
}

// verifyGoogleIDToken validates an ID token against Google's tokeninfo
// endpoint and, when GOOGLE_CLIENT_ID is configured, checks the audience.
func verifyGoogleIDToken(idToken string) (*googleTokenInfo, error) {
	resp, err := http.Get(googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token rejected by Google")
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}

	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" && info.Audience != clientID {
		return nil, fmt.Errorf("token audience mismatch")
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return nil, fmt.Errorf("email not verified")
	}

	return &info, nil
}

// GoogleLogin handles federated sign-in with a Google ID token. First-time
// sign-ins create a consumer account; the response matches Login.
func GoogleLogin(c *fiber.Ctx) error {
	type GoogleInput struct {
		IDToken string `json:"id_token"`
	}

	input := new(GoogleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.IDToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing id_token",
		})
	}

	info, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		log.Printf("Google sign-in rejected: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid Google token",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", info.Email).First(&user).RowsAffected == 0 {
		var userRole models.Role
		if err := db.DB.Where("name = ?", models.RoleUser).First(&userRole).Error; err != nil {
			log.Printf("Error finding user role: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to assign default role",
			})
		}

		// No password: federated accounts can only sign in through Google.
		user = models.User{
			FirstName: info.GivenName,
			LastName:  info.FamilyName,
			Email:     info.Email,
			RoleID:    userRole.ID,
		}
		if err := db.DB.Create(&user).Error; err != nil {
			log.Printf("Error creating user: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create user",
			})
		}
	}

	var role models.Role
	if err := db.DB.First(&role, user.RoleID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch role",
		})
	}

	tokenString, refreshTokenString, err := issueTokenPair(user, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"user": fiber.Map{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       role.Name,
			"role_id":    role.ID,
		},
	})
}

// GetMe returns the current user's profile
func GetMe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.Preload("Role").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	// Don't send password
	user.Password = ""

	return c.JSON(user)
}

// Logout doesn't actually invalidate the token as JWTs are stateless
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"id":    claims["id"],
		"email": claims["email"],
		"role":  claims["role"],
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString(jwtSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}

// ForgotPassword issues a reset code by email. The response does not reveal
// whether the address has an account.
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}

	input := new(ForgotInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected > 0 {
		user.OTP = utils.GenerateOTP()
		user.OTPExpiresAt = time.Now().Add(15 * time.Minute)
		if err := db.DB.Save(&user).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to issue reset code",
			})
		}

		body := utils.BuildPasswordResetEmail(user.FullName(), user.OTP)
		if err := utils.SendEmail(user.Email, "BHub password reset", body); err != nil {
			log.Printf("Failed to send reset email to %s: %v", user.Email, err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "If the account exists, a reset code has been sent",
	})
}

// ResetPassword sets a new password after OTP verification.
func ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Email    string `json:"email"`
		OTP      string `json:"otp"`
		Password string `json:"password"`
	}

	input := new(ResetInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid reset code",
		})
	}
	if user.OTP == "" || user.OTP != input.OTP || time.Now().After(user.OTPExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid reset code",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user.Password = string(hashedPassword)
	user.OTP = ""
	user.OTPExpiresAt = time.Time{}
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Password reset successfully",
	})
}
