package authutils

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"gig-works-backend/config"
	"gig-works-backend/models"
)

func GetStaffToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":   name,
		"sub":    userID,
		"role":   string(role),
		"portal": models.TokenKindStaff,
		"exp":    time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetWorkerToken(workerID, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":   name,
		"sub":    workerID,
		"portal": models.TokenKindWorker,
		"exp":    time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

// GetUserID returns the token subject: the admin user ID on the staff
// portal, the worker ID on the worker portal.
func GetUserID(ctx *fiber.Ctx) string {
	id, _ := GetClaims(ctx)["sub"].(string)
	return id
}

func GetUserName(ctx *fiber.Ctx) string {
	name, _ := GetClaims(ctx)["name"].(string)
	return name
}

func GetMD5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}
