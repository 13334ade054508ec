package collection

import (
	"context"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/notify"
	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
	"github.com/dmitrijs2005/fleetkeeper/internal/metrics"
)

// Op names a repository operation in logs, metrics and messages.
type Op string

const (
	OpLoad   Op = "load"
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Storage is the part of store.Adapter a collection needs.
type Storage interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

// Notifier receives human-readable outcome messages.
type Notifier interface {
	Info(message string) string
	Success(message string) string
	Error(message string) string
}

// Options describe one entity type to the generic core.
type Options[T any] struct {
	// Key is the storage key of the collection, e.g. store.KeyShips.
	Key string
	// Entity is the singular display name, e.g. "Ship".
	Entity string
	// IDPrefix is passed to idgen.New for new records.
	IDPrefix string

	ID func(T) string
	// Init assigns the id and creation stamps of a new record.
	Init func(rec *T, id string, now time.Time)
	// Touch refreshes the modification stamp; nil for untimed entities.
	Touch func(rec *T, now time.Time)
	// UpdatedAt returns the modification stamp; nil for untimed entities.
	UpdatedAt func(T) time.Time
	// Check runs after Validate on Add and Update, inside the serialized
	// section. current is the collection before the change; on Update it
	// still holds the previous version of rec.
	Check func(op Op, current []T, rec T) error
	// Describe overrides the success message of an operation.
	Describe func(op Op, rec T) string
}

// Deps are the collaborators shared by every collection.
type Deps struct {
	Storage  Storage
	Notifier Notifier
	Logger   logging.Logger
	Metrics  *metrics.Metrics
	// Now defaults to time.Now.
	Now func() time.Time
}

// nopNotifier drops messages when no broadcaster is wired.
type nopNotifier struct{}

func (nopNotifier) Info(string) string    { return "" }
func (nopNotifier) Success(string) string { return "" }
func (nopNotifier) Error(string) string   { return "" }

var _ Notifier = (*notify.Broadcaster)(nil)
