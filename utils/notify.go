package utils

import (
	"sync"
	"time"
)

// How long a notification stays active before auto-dismissal.
const notificationTTL = 3 * time.Second

// Notification is a transient on-screen message.
type Notification struct {
	Message   string
	Level     string // "info", "success", "error"
	CreatedAt time.Time
}

// Notifier holds the currently active notifications. Each one dismisses
// itself after the fixed TTL.
type Notifier struct {
	mu     sync.Mutex
	active []Notification
	ttl    time.Duration
}

// NewNotifier returns a Notifier with the standard 3-second TTL.
func NewNotifier() *Notifier {
	return &Notifier{ttl: notificationTTL}
}

// Notify shows a message and schedules its dismissal.
func (n *Notifier) Notify(level, message string) {
	note := Notification{Message: message, Level: level, CreatedAt: time.Now()}
	n.mu.Lock()
	n.active = append(n.active, note)
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() { n.dismiss(note) })
}

// Active returns a copy of the notifications currently showing.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.active))
	copy(out, n.active)
	return out
}

func (n *Notifier) dismiss(note Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.active {
		if n.active[i] == note {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return
		}
	}
}
