package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

type Notification struct {
	ID          uuid.UUID
	Title       string
	Description string
	Severity    Severity
	CreatedAt   time.Time
}

// Notifier accepts transient messages. Delivery is fire-and-forget.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// Center keeps only the last notification. A newer one replaces the older.
type Center struct {
	mu   sync.Mutex
	last *Notification
	now  func() time.Time
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

func (c *Center) Notify(title, description string, severity Severity) {
	if severity == "" {
		severity = SeverityDefault
	}
	n := &Notification{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   c.now(),
	}

	c.mu.Lock()
	c.last = n
	c.mu.Unlock()
}

// Take returns the most recent notification and clears it, so a toast is
// shown on one page render only.
func (c *Center) Take() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil {
		return Notification{}, false
	}
	n := *c.last
	c.last = nil
	return n, true
}
