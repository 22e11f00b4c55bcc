package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) Create(c *gin.Context) {
	var body models.InsertUser
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	user, err := uc.users.Create(c.Request.Context(), body)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to create user"})
		return
	}
	c.JSON(201, user)
}

func (uc *UserController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid ID format"})
		return
	}

	user, err := uc.users.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}
	c.JSON(200, user)
}

func (uc *UserController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid ID format"})
		return
	}

	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	user, err := uc.users.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to update user"})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}
	c.JSON(200, user)
}

// Metrics serves the profile screen: BMI, its category and the
// recommended daily calories for the stored body data.
func (uc *UserController) Metrics(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid ID format"})
		return
	}

	user, err := uc.users.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}
	c.JSON(200, uc.users.Metrics(user))
}
