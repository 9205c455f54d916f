package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

func (u *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := u.db.Preload("Reservations").Preload("Reviews").Find(&users).Error; err != nil {
		return middleware.Internal("Failed to fetch users", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully", users)
}

func (u *UserController) CreateUser(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.UserSchema.ValidateCreate(body); err != nil {
		return err
	}

	email := strField(body, "email")

	var existing models.User
	err = u.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return middleware.Conflict("Email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.Internal("Failed to create user", err)
	}

	user := models.User{
		Name:     strField(body, "name"),
		Email:    email,
		Password: strField(body, "password"),
		Phone:    strField(body, "phone"),
	}
	if err := u.db.Create(&user).Error; err != nil {
		return middleware.Internal("Failed to create user", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully", user)
}

func (u *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.UserSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("User not found")
		}
		return middleware.Internal("Failed to update user", err)
	}

	if has(body, "name") {
		user.Name = strField(body, "name")
	}
	if has(body, "email") {
		user.Email = strField(body, "email")
	}
	if has(body, "password") {
		user.Password = strField(body, "password")
	}
	if has(body, "phone") {
		user.Phone = strField(body, "phone")
	}

	if err := u.db.Save(&user).Error; err != nil {
		return middleware.Internal("Failed to update user", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully", user)
}

func (u *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("User not found")
		}
		return middleware.Internal("Failed to delete user", err)
	}

	if err := u.db.Delete(&user).Error; err != nil {
		return middleware.Internal("Failed to delete user", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", nil)
}
