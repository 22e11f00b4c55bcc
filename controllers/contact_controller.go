package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/services"
)

type ContactController struct {
	contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

func (cc *ContactController) Create(c *gin.Context) {
	var body models.InsertContactMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"message": err.Error()})
		return
	}

	msg, err := cc.contact.Create(c.Request.Context(), body)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to send contact message"})
		return
	}
	c.JSON(201, gin.H{"message": "Message sent successfully", "id": msg.ID})
}
