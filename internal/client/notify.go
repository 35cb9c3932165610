package client

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDismissAfter is how long a notification stays visible.
const DefaultDismissAfter = 3 * time.Second

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// Notification is a transient user-facing message.
type Notification struct {
	Message string
	Level   NotificationLevel
}

// Notifier shows one transient notification at a time, auto-dismissing it
// after a fixed interval. A new notification replaces the current one and
// restarts the dismissal timer.
type Notifier struct {
	mu           sync.Mutex
	current      *Notification
	timer        *time.Timer
	dismissAfter time.Duration
	logger       *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		dismissAfter: DefaultDismissAfter,
		logger:       logger,
	}
}

func (n *Notifier) Success(message string) {
	n.show(message, LevelSuccess)
}

func (n *Notifier) Error(message string) {
	n.show(message, LevelError)
}

func (n *Notifier) show(message string, level NotificationLevel) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.logger.Info("Notification",
		zap.String("level", string(level)),
		zap.String("message", message),
	)

	n.current = &Notification{Message: message, Level: level}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.dismissAfter, n.dismiss)
}

func (n *Notifier) dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
}

// Current returns the visible notification, or nil when none is showing.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
