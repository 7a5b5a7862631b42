package controllers

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"go-restaurant-orders/apperrors"
	"go-restaurant-orders/helpers"
	"go-restaurant-orders/models"
	"go-restaurant-orders/repository"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	letterRegex = regexp.MustCompile(`[A-Za-z]`)
	digitRegex  = regexp.MustCompile(`\d`)
)

type UserController struct {
	users *repository.UserRepository
}

func NewUserController(users *repository.UserRepository) *UserController {
	return &UserController{users: users}
}

type registerRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
	Role     string           `json:"role"`
	Phone    string           `json:"phone"`
	Address  []models.Address `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authenticatedUser struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

func (uc *UserController) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req registerRequest
		if err := c.BindJSON(&req); err != nil {
			respondBindError(c)
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" || req.Phone == "" || len(req.Address) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}
		if len(req.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 8 characters long"})
			return
		}
		if !emailRegex.MatchString(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
			return
		}
		if !letterRegex.MatchString(req.Password) || !digitRegex.MatchString(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must contain at least one letter and one number"})
			return
		}
		if req.Role != models.RoleCustomer && req.Role != models.RoleAdmin && req.Role != models.RoleStaff {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}

		count, err := uc.users.CountByEmail(ctx, req.Email)
		if err != nil {
			respondError(c, apperrors.NewStore("Error registering user", err))
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 14)
		if err != nil {
			respondError(c, apperrors.NewStore("Error registering user", err))
			return
		}
		password := string(hashed)

		now := time.Now().UTC()
		user := models.User{
			ID:        primitive.NewObjectID(),
			Name:      &req.Name,
			Email:     &req.Email,
			Password:  &password,
			Role:      &req.Role,
			Phone:     &req.Phone,
			Address:   req.Address,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := validate.Struct(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		saved, err := uc.users.Insert(ctx, user)
		if err != nil {
			respondError(c, apperrors.NewStore("Error registering user", err))
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(*saved.Email, *saved.Name, saved.ID.Hex(), *saved.Role)
		if err != nil {
			respondError(c, apperrors.NewStore("Error registering user", err))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"token":        token,
			"refreshToken": refreshToken,
			"user": authenticatedUser{
				ID:    saved.ID,
				Name:  *saved.Name,
				Email: *saved.Email,
			},
		})
	}
}

func (uc *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req loginRequest
		if err := c.BindJSON(&req); err != nil {
			respondBindError(c)
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
			return
		}

		user, err := uc.users.FindByEmail(ctx, req.Email)
		if err != nil {
			respondError(c, apperrors.NewStore("Error logging in", err))
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(*user.Email, *user.Name, user.ID.Hex(), *user.Role)
		if err != nil {
			respondError(c, apperrors.NewStore("Error logging in", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"refreshToken": refreshToken,
			"user": authenticatedUser{
				ID:    user.ID,
				Name:  *user.Name,
				Email: *user.Email,
			},
		})
	}
}
