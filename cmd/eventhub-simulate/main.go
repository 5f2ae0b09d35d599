// Command eventhub-simulate lets concurrent attendees race for the seats of one event and checks
// that the event is never overbooked.
//
// Configuration is read from EVENTHUB_* environment variables, a .env file in the working
// directory is loaded first if it exists.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/AntonStoeckl/eventhub/app"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell/config"
)

type simulationConfig struct {
	attendees     int
	capacity      int
	maxTicketsPer int
}

func main() {
	if err := run(); err != nil {
		slog.Error("simulation failed", "error", err.Error())
		os.Exit(1)
	}
}

func parseFlags() simulationConfig {
	cfg := simulationConfig{}

	flag.IntVar(&cfg.attendees, "attendees", 50, "number of concurrent registrations")
	flag.IntVar(&cfg.capacity, "capacity", 20, "capacity of the event")
	flag.IntVar(&cfg.maxTicketsPer, "max-tickets", 3, "upper bound of tickets per registration")
	flag.Parse()

	return cfg
}

func run() error {
	simCfg := parseFlags()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventHub, err := app.Open(ctx, cfg, app.WithLogHandler(handler))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := eventHub.Close(); closeErr != nil {
			logger.Warn("closing eventhub failed", "error", closeErr.Error())
		}
	}()

	eventID, err := givenOrganizerAndEvent(ctx, eventHub, simCfg.capacity)
	if err != nil {
		return err
	}

	if err = givenSignedInAttendee(ctx, eventHub); err != nil {
		return err
	}

	registered, rejected, tickets := race(ctx, eventHub, eventID, simCfg, logger)

	details, err := eventHub.Events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}

	logger.Info(
		"simulation finished",
		"event_id", eventID.String(),
		"capacity", details.Event.Capacity,
		"attendees", details.Event.Attendees,
		"tickets_sold", tickets,
		"registrations_accepted", registered,
		"registrations_rejected", rejected,
	)

	if details.Event.Attendees > details.Event.Capacity || int64(details.Event.Attendees) != tickets {
		return fmt.Errorf("inconsistent event: %d attendees, %d tickets sold, capacity %d",
			details.Event.Attendees, tickets, details.Event.Capacity)
	}

	return nil
}

func givenOrganizerAndEvent(ctx context.Context, eventHub *app.App, capacity int) (uuid.UUID, error) {
	suffix := uuid.NewString()[:8]

	organizer, err := eventHub.Users.CreateUser(ctx, core.UserProfile{
		Email:     "organizer-" + suffix + "@example.com",
		FirstName: "Olivia",
		LastName:  "Organizer",
	}, "organizer-secret")
	if err != nil {
		return uuid.Nil, fmt.Errorf("create organizer: %w", err)
	}

	if _, err = eventHub.Users.SetSession(ctx, uuid.MustParse(organizer.UserID)); err != nil {
		return uuid.Nil, err
	}

	event, err := eventHub.Events.Create(ctx, core.EventDraft{
		Title:       "Simulated Meetup " + suffix,
		Date:        "2026-12-01",
		Location:    "Online",
		Category:    "meetup",
		Description: "Seats are raced for by concurrent attendees.",
		Capacity:    capacity,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("create event: %w", err)
	}

	return uuid.MustParse(event.EventID), nil
}

func givenSignedInAttendee(ctx context.Context, eventHub *app.App) error {
	email := "attendee-" + uuid.NewString()[:8] + "@example.com"

	if _, err := eventHub.Users.CreateUser(ctx, core.UserProfile{
		Email:     email,
		FirstName: "Alex",
		LastName:  "Attendee",
	}, "attendee-secret"); err != nil {
		return fmt.Errorf("create attendee: %w", err)
	}

	if _, _, err := eventHub.Users.Login(ctx, email, "attendee-secret"); err != nil {
		return fmt.Errorf("login attendee: %w", err)
	}

	return nil
}

func race(
	ctx context.Context,
	eventHub *app.App,
	eventID uuid.UUID,
	simCfg simulationConfig,
	logger *slog.Logger,
) (registered int64, rejected int64, tickets int64) {
	var (
		wg            sync.WaitGroup
		registeredCnt atomic.Int64
		rejectedCnt   atomic.Int64
		ticketsCnt    atomic.Int64
	)

	contact := core.ContactDetails{FirstName: "Alex", LastName: "Attendee", Email: "alex@example.com", Phone: "+1 555 0100"}

	for range simCfg.attendees {
		ticketCount := 1 + rand.Intn(max(simCfg.maxTicketsPer, 1)) //nolint:gosec // not security relevant

		wg.Add(1)
		go func() {
			defer wg.Done()

			_, _, err := eventHub.Workflow.Register(ctx, eventID, ticketCount, contact)

			switch {
			case err == nil:
				registeredCnt.Add(1)
				ticketsCnt.Add(int64(ticketCount))
			case errors.Is(err, core.ErrCapacityExceeded):
				rejectedCnt.Add(1)
			default:
				logger.Error("registration failed", "ticket_count", ticketCount, "error", err.Error())
			}
		}()
	}

	wg.Wait()

	return registeredCnt.Load(), rejectedCnt.Load(), ticketsCnt.Load()
}
