package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

func (fc *FoodController) Create(c *gin.Context) {
	var body models.InsertFood
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	food, err := fc.foods.Create(c.Request.Context(), body)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to create food"})
		return
	}
	c.JSON(201, food)
}

// List returns the whole catalog, or a single food when ?name= is given.
func (fc *FoodController) List(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		food, err := fc.foods.GetByName(c.Request.Context(), name)
		if err != nil {
			c.JSON(500, gin.H{"message": "Failed to fetch foods"})
			return
		}
		if food == nil {
			c.JSON(404, gin.H{"message": "Food not found"})
			return
		}
		c.JSON(200, food)
		return
	}

	foods, err := fc.foods.List(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to fetch foods"})
		return
	}
	c.JSON(200, foods)
}
