package service

import (
	"fmt"

	"carrental/internal/domain"
	"carrental/internal/entities"
	"carrental/internal/logger"
	"carrental/internal/utils"
)

// NotifyService tells the customer about reservation lifecycle changes over
// email and SMS. Both channels are best-effort: failures are logged and never
// surfaced to the caller, and channels without contact data are skipped.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

// ReservationChanged sends a confirmation or cancellation notice. status is a
// short word like "confirmed" or "cancelled".
func (s *NotifyService) ReservationChanged(contact entities.Contact, res *domain.Reservation, status string) {
	data := entities.ReservationEmailData{
		UserName:          contact.UserName,
		ReservationID:     res.ID.String(),
		Category:          string(res.Vehicle.Category),
		Price:             res.Price,
		FromDateFormatted: utils.FormatDate(res.FromDate),
		ToDateFormatted:   utils.FormatDate(res.ToDate),
		Status:            status,
	}

	if contact.UserEmail != "" {
		subject := fmt.Sprintf("Your rental reservation is %s - Ref: %s", status, data.ReservationID)
		body := fmt.Sprintf(
			"Hello %s,\n\nYour reservation is %s.\n\n"+
				"Reservation Details:\n"+
				"Reference: %s\n"+
				"Vehicle category: %s\n"+
				"Pick-up: %s\n"+
				"Drop-off: %s\n"+
				"Price: %.2f\n\n"+
				"Thank you for renting with us.",
			data.UserName, status, data.ReservationID, data.Category,
			data.FromDateFormatted, data.ToDateFormatted, data.Price,
		)
		go func(toEmail, toName, subject, body string) {
			if err := SendEmailWithSendGrid(toEmail, toName, subject, body); err != nil {
				logger.Log.Warnw("Reservation email failed",
					"reservation_id", data.ReservationID, "error", err)
			}
		}(contact.UserEmail, contact.UserName, subject, body)
	}

	if contact.UserPhone != "" {
		sms := fmt.Sprintf("Your rental reservation %s has been %s. Pick-up: %s. Details in your email.",
			data.ReservationID, status, data.FromDateFormatted)
		go func(toPhone, sms string) {
			if err := SendSMS(toPhone, sms); err != nil {
				logger.Log.Warnw("Reservation SMS failed",
					"reservation_id", data.ReservationID, "error", err)
			}
		}(contact.UserPhone, sms)
	}
}
