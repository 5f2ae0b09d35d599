package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/eventhub/eventstore/oteladapters"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	"github.com/AntonStoeckl/eventhub/shared/shell/config"
)

const (
	generatedSessionSecretBytes = 32

	logMsgOpened                 = "eventhub opened"
	logMsgSessionSecretGenerated = "no session secret configured, generated a random one"
	logAttrStorageDriver         = "storage_driver"
)

// Aliases of the values the store hands out.
type (
	User         = core.UserState
	Event        = core.EventState
	Registration = core.RegistrationState
	Quote        = core.Quote
)

// App is the store object. Its fields are set by Open and must not be replaced.
type App struct {
	Users         *Users
	Events        *Events
	Registrations *Registrations
	Workflow      *Workflow

	closers   []func() error
	closeOnce sync.Once
	closeErr  error
}

// Open connects to the configured storage, creates the events schema if needed and wires all
// handlers. The context bounds connecting and schema creation only.
func Open(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if o.contextualLogger == nil {
		handler := o.logHandler
		if handler == nil {
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
		}

		o.contextualLogger = oteladapters.NewTraceCorrelatingLogger(handler)
	}

	es, closers, err := openEventStore(ctx, cfg, o)
	a := &App{closers: closers}
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}

	if err = es.EnsureSchema(ctx); err != nil {
		return nil, errors.Join(err, a.Close())
	}

	tokens, err := newSessionTokens(ctx, cfg, o)
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}

	pricing := core.Pricing{UnitPrice: cfg.TicketPrice, FeePercent: cfg.FeePercent}
	retry := []shell.RetryOption{shell.WithMaxAttempts(cfg.RetryMaxAttempts)}

	handlers, err := newHandlerBundle(es, shell.NewPasswordHasher(cfg.BcryptCost), pricing, retry, o)
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}

	identity := sessionIdentity{currentSession: handlers.currentSession}

	a.Users = &Users{
		handlers: handlers,
		hasher:   shell.NewPasswordHasher(cfg.BcryptCost),
		tokens:   tokens,
		identity: identity,
		now:      o.now,
	}
	a.Events = &Events{handlers: handlers, identity: identity, now: o.now}
	a.Registrations = &Registrations{handlers: handlers, identity: identity}
	a.Workflow = &Workflow{handlers: handlers, identity: identity, pricing: pricing, now: o.now}

	o.contextualLogger.InfoContext(ctx, logMsgOpened, logAttrStorageDriver, cfg.StorageDriver)

	return a, nil
}

// Close releases the database connections. It is safe to call more than once.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		var errs []error

		for _, closeFn := range slices.Backward(a.closers) {
			if err := closeFn(); err != nil {
				errs = append(errs, err)
			}
		}

		a.closeErr = errors.Join(errs...)
	})

	return a.closeErr
}

func newSessionTokens(ctx context.Context, cfg config.Config, o options) (shell.SessionTokens, error) {
	secret := []byte(cfg.SessionSecret)

	if len(secret) == 0 {
		secret = make([]byte, generatedSessionSecretBytes)
		if _, err := rand.Read(secret); err != nil {
			return shell.SessionTokens{}, fmt.Errorf("generate session secret: %w", err)
		}

		o.contextualLogger.InfoContext(ctx, logMsgSessionSecretGenerated)
	}

	tokens, err := shell.NewSessionTokens(secret, cfg.SessionTTL)
	if err != nil {
		return shell.SessionTokens{}, err
	}

	return tokens.WithClock(o.now), nil
}
