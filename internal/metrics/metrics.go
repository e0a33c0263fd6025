package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "workshop_scheduler",
			Name:      "booking_created_total",
			Help:      "Count of slots successfully claimed by customers.",
		},
	)

	bookingConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "workshop_scheduler",
			Name:      "booking_conflict_total",
			Help:      "Count of booking attempts on already claimed slots.",
		},
	)

	monthReconciled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "workshop_scheduler",
			Name:      "month_reconciled_total",
			Help:      "Count of calendar month regenerations.",
		},
	)

	mailFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "workshop_scheduler",
			Name:      "confirmation_mail_failed_total",
			Help:      "Count of confirmation emails that could not be sent.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingConflict, monthReconciled, mailFailed)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingConflict() {
	bookingConflict.Inc()
}

func IncMonthReconciled() {
	monthReconciled.Inc()
}

func IncMailFailed() {
	mailFailed.Inc()
}
