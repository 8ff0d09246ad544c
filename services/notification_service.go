package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sharpcut.app/configs"
	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
	"sharpcut.app/pkg/events"
	"sharpcut.app/pkg/mailer"
)

// IAppointmentNotifier is the side-effecting hook invoked after an
// appointment is persisted. Implementations must never propagate failures
// back to the request that created the appointment.
type IAppointmentNotifier interface {
	AppointmentScheduled(appointment models.Appointment)
}

// AppointmentNotifier emails both parties and publishes a scheduling event
// for downstream reminder processing.
type AppointmentNotifier struct {
	sender    mailer.Sender
	publisher events.Publisher
	timeout   time.Duration
}

// NewAppointmentNotifier builds the production notifier from environment
// configuration. The Kafka publisher may be disabled (empty broker list).
func NewAppointmentNotifier() *AppointmentNotifier {
	return &AppointmentNotifier{
		sender: mailer.NewSMTPSender(
			configs.GetEnv("SMTP_HOST", "localhost"),
			configs.GetEnv("SMTP_PORT", "1025"),
			configs.GetEnv("SMTP_FROM", ""),
		),
		publisher: events.NewKafkaPublisher(configs.KafkaBrokers()),
		timeout:   10 * time.Second,
	}
}

// scheduledEvent is the wire payload of TopicAppointmentScheduled.
type scheduledEvent struct {
	AppointmentID uint      `json:"appointmentId"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	ClientEmail   string    `json:"clientEmail"`
	BarberEmail   string    `json:"barberEmail"`
}

// AppointmentScheduled runs the post-commit side effects. Called from a
// goroutine by the appointment service; every failure is logged and dropped.
func (n *AppointmentNotifier) AppointmentScheduled(appointment models.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	client := appointment.Client.AppUser
	barber := appointment.Barber.AppUser
	when := appointment.StartsAt.Format("Monday, 2 January 2006 at 15:04")

	if client.Email != "" {
		body := fmt.Sprintf("Hi %s,\n\nyour appointment with %s is booked for %s.\n\nSee you soon!",
			client.FirstName, barber.FullName(), when)
		if err := n.sender.Send(client.Email, "Your appointment is booked", body); err != nil {
			configslog.Log.Error("notifier: client email failed",
				zap.Uint("appointmentID", appointment.ID), zap.Error(err))
		}
	}
	if barber.Email != "" {
		body := fmt.Sprintf("Hi %s,\n\n%s booked an appointment with you for %s.",
			barber.FirstName, client.FullName(), when)
		if err := n.sender.Send(barber.Email, "New appointment scheduled", body); err != nil {
			configslog.Log.Error("notifier: barber email failed",
				zap.Uint("appointmentID", appointment.ID), zap.Error(err))
		}
	}

	payload, err := json.Marshal(scheduledEvent{
		AppointmentID: appointment.ID,
		StartsAt:      appointment.StartsAt,
		EndsAt:        appointment.EndsAt,
		ClientEmail:   client.Email,
		BarberEmail:   barber.Email,
	})
	if err != nil {
		configslog.Log.Error("notifier: event marshal failed", zap.Error(err))
		return
	}
	key := fmt.Sprintf("%d", appointment.ID)
	if err := n.publisher.Publish(ctx, events.TopicAppointmentScheduled, key, payload); err != nil {
		configslog.Log.Error("notifier: event publish failed",
			zap.Uint("appointmentID", appointment.ID), zap.Error(err))
	}
}

var _ IAppointmentNotifier = (*AppointmentNotifier)(nil)
