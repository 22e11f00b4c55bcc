package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/services"
)

type MealController struct {
	meals *services.MealService
	users *services.UserService
}

func NewMealController(meals *services.MealService, users *services.UserService) *MealController {
	return &MealController{meals: meals, users: users}
}

func (mc *MealController) Create(c *gin.Context) {
	var body models.InsertMeal
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	meal, err := mc.meals.Create(c.Request.Context(), body)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to create meal"})
		return
	}
	c.JSON(201, meal)
}

func (mc *MealController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid ID format"})
		return
	}

	meal, err := mc.meals.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch meal"})
		return
	}
	if meal == nil {
		c.JSON(404, gin.H{"message": "Meal not found"})
		return
	}
	c.JSON(200, meal)
}

// ListForUser handles /api/users/:id/meals with three query shapes:
// ?date=, ?startDate=&endDate=, or no filter at all.
func (mc *MealController) ListForUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid user ID format"})
		return
	}

	user, err := mc.users.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch meals"})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}

	meals, err := mc.meals.ListForUser(
		c.Request.Context(), userID,
		c.Query("date"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch meals"})
		return
	}
	c.JSON(200, meals)
}

func (mc *MealController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid ID format"})
		return
	}

	var patch models.MealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	meal, err := mc.meals.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to update meal"})
		return
	}
	if meal == nil {
		c.JSON(404, gin.H{"message": "Meal not found"})
		return
	}
	c.JSON(200, meal)
}

func (mc *MealController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid ID format"})
		return
	}

	deleted, err := mc.meals.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to delete meal"})
		return
	}
	if !deleted {
		c.JSON(404, gin.H{"message": "Meal not found"})
		return
	}
	c.Status(204)
}
