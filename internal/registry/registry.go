// Package registry owns the authoritative in-memory set of activities and
// enforces participant-list invariants. State lives for the process lifetime
// and resets on restart.
package registry

import (
	"fmt"
	"sync"

	"activity-signup/internal/common/errors"
	"activity-signup/internal/common/logger"
	"activity-signup/internal/common/metrics"
)

// Activity is a named extracurricular offering. Name is the registry key and
// is not repeated in the JSON value. Participants preserve insertion order
// and never contain the same email twice (case-sensitive).
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registry maps activity name to Activity. Activities are never created or
// deleted at runtime; only participant lists mutate. A single lock guards the
// whole map so every call appears atomic to concurrent requests.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	logger     logger.Logger
}

// New builds a registry from the seed activities. Duplicate activity names or
// duplicate participants within an activity are rejected.
func New(log logger.Logger, activities []Activity) (*Registry, error) {
	r := &Registry{
		activities: make(map[string]*Activity, len(activities)),
		logger:     log.WithFields(map[string]interface{}{"component": "registry"}),
	}

	for _, act := range activities {
		if _, exists := r.activities[act.Name]; exists {
			return nil, fmt.Errorf("duplicate activity name %q in seed catalog", act.Name)
		}
		seen := make(map[string]bool, len(act.Participants))
		for _, email := range act.Participants {
			if seen[email] {
				return nil, fmt.Errorf("duplicate participant %q in activity %q", email, act.Name)
			}
			seen[email] = true
		}

		stored := act
		// Non-nil even when empty so List serializes participants as [].
		stored.Participants = append(make([]string, 0, len(act.Participants)), act.Participants...)
		r.activities[act.Name] = &stored

		metrics.ActivityParticipants.WithLabelValues(act.Name).Set(float64(len(stored.Participants)))
	}

	r.logger.Info("registry seeded", map[string]interface{}{
		"activities": len(r.activities),
	})
	return r, nil
}

// List returns a snapshot of every activity keyed by name. Participant slices
// are copied so callers can never alias registry state.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		snapshot := *act
		snapshot.Participants = append(make([]string, 0, len(act.Participants)), act.Participants...)
		out[name] = snapshot
	}
	return out
}

// Signup appends email to the activity's participant list and returns the
// confirmation message. max_participants is advisory and never enforced.
// On failure no state is mutated.
func (r *Registry) Signup(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activityName]
	if !ok {
		return "", errors.NewActivityNotFoundError()
	}

	for _, existing := range act.Participants {
		if existing == email {
			return "", errors.NewAlreadySignedUpError(email)
		}
	}

	act.Participants = append(act.Participants, email)
	metrics.ActivityParticipants.WithLabelValues(activityName).Set(float64(len(act.Participants)))

	r.logger.Info("participant signed up", map[string]interface{}{
		"activity":     activityName,
		"email":        email,
		"participants": len(act.Participants),
	})
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the activity's participant list, preserving
// the order of the remaining entries, and returns the confirmation message.
// On failure no state is mutated.
func (r *Registry) Unregister(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activityName]
	if !ok {
		return "", errors.NewActivityNotFoundError()
	}

	idx := -1
	for i, existing := range act.Participants {
		if existing == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", errors.NewNotSignedUpError(email)
	}

	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)
	metrics.ActivityParticipants.WithLabelValues(activityName).Set(float64(len(act.Participants)))

	r.logger.Info("participant unregistered", map[string]interface{}{
		"activity":     activityName,
		"email":        email,
		"participants": len(act.Participants),
	})
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
