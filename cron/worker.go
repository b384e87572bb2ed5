package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wayfare/config"
	"wayfare/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeCheckInReminder = "booking:reminder"

// AsynqReminderScheduler enqueues check-in reminders on the asynq queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleCheckInReminder queues a reminder for the day before the booking
// date. Bookings made for today (or with an unparseable date) get the
// reminder shortly after confirmation instead.
func (s *AsynqReminderScheduler) ScheduleCheckInReminder(ctx context.Context, booking models.Booking) error {
	payload := models.ReminderPayload{
		BookingID: booking.ID,
		Type:      string(booking.Type),
		User:      booking.User,
		Label:     reminderLabel(booking),
		Date:      booking.Date,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	delay := time.Minute
	if date, err := time.Parse("2006-01-02", booking.Date); err == nil {
		if until := time.Until(date.Add(-24 * time.Hour)); until > delay {
			delay = until
		}
	}

	_, err = s.client.EnqueueContext(ctx, asynq.NewTask(TypeCheckInReminder, b), asynq.ProcessIn(delay))
	return err
}

func reminderLabel(booking models.Booking) string {
	if booking.Type == models.BookingHotel {
		return booking.Hotel + " in " + booking.City
	}
	return booking.Airline + " to " + booking.Destination
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCheckInReminder, handleCheckInReminder)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCheckInReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
		return err
	}

	// Delivery channel TBD; for now the reminder is only surfaced in the log.
	log.Printf("[ReminderHandler] ⏰ Check-in reminder for booking %s: %s, %s on %s",
		p.BookingID, p.User, p.Label, p.Date)
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
