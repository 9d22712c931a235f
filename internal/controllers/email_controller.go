package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trek_seeker/internal/clients"
	"trek_seeker/internal/services"
)

type EmailController struct {
	email *services.EmailService
}

func NewEmailController(email *services.EmailService) *EmailController {
	return &EmailController{email: email}
}

// SendItinerary accepts a multipart form with a "to" address and an optional
// itinerary document under the "file" field, and mails the canned itinerary
// message with that document attached.
func (ctl *EmailController) SendItinerary(c *gin.Context) {
	to := c.PostForm("to")
	if to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Recipient email is required"})
		return
	}

	var attachments []clients.Attachment
	if header, err := c.FormFile("file"); err == nil {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read attachment"})
			return
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read attachment"})
			return
		}
		attachments = append(attachments, clients.Attachment{
			Filename: header.Filename,
			Content:  content,
		})
	}

	if err := ctl.email.SendItinerary(to, attachments); err != nil {
		logrus.WithError(err).Error("itinerary email failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}
