package services

import (
	"trek_seeker/internal/clients"
)

const itinerarySubject = "Your Journey Begins Here: Check Out Your Personalized Itinerary!"

const itineraryBody = `
    <!DOCTYPE html>
    <html lang="en">
    <head>
        <meta charset="UTF-8">
        <meta name="viewport" content="width=device-width, initial-scale=1.0">
        <title>Email Template</title>
    </head>
    <body style="font-family: Arial, sans-serif; color: #333; margin: 0; padding: 0; background-color: #f4f4f4;">
        <div style="width: 100%; max-width: 600px; margin: auto; background: #ffffff; padding: 20px; border-radius: 8px;">
            <div style="background: #007bff; color: #ffffff; padding: 20px; border-radius: 8px 8px 0 0; text-align: center;">
                <h1 style="margin: 0; font-size: 24px;">Exciting Adventure Awaits!</h1>
            </div>
            <div style="padding: 20px; font-size: 16px; line-height: 1.6;">
                <h2 style="color: #007bff;">Greetings!</h2>
                <p>We are thrilled to share your personalized trip itinerary. Attached, you'll find the summary plan for your upcoming adventure!</p>
                <p>We hope you have a fantastic journey filled with unforgettable experiences!</p>
                <p>Thank you for choosing Trek Seeker.</p>
            </div>
            <div style="text-align: center; padding: 10px; font-size: 14px; color: #777; border-top: 1px solid #e0e0e0; margin-top: 20px;">
                <p>Built with ❤️ by Trek Seeker</p>
            </div>
        </div>
    </body>
    </html>
`

type EmailService struct {
	mailer Mailer
}

func NewEmailService(mailer Mailer) *EmailService {
	return &EmailService{mailer: mailer}
}

// SendItinerary mails the canned itinerary message, optionally with the
// uploaded plan attached.
func (s *EmailService) SendItinerary(to string, attachments []clients.Attachment) error {
	return s.mailer.Send(to, itinerarySubject, itineraryBody, attachments)
}
