package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"spleux/api/models"
)

// MaxStoredEvents caps the event log. Oldest entries are dropped first
// so the file never grows past roughly a few megabytes.
const MaxStoredEvents = 10000

// AnalyticsStore keeps the event log as a single JSON array on disk and
// rewrites the whole file on every append. The mutex serializes writers
// within this process; a second process writing the same file remains a
// race the storage format cannot detect.
type AnalyticsStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewAnalyticsStore(path string, log *zap.Logger) *AnalyticsStore {
	return &AnalyticsStore{
		path: path,
		log:  log,
	}
}

// Append ingests one event: assigns an id, derives the device type from
// the user agent, appends, trims to the most recent MaxStoredEvents, and
// writes the log back.
func (s *AnalyticsStore) Append(event models.AnalyticsEvent, deviceType models.DeviceType) (models.StoredEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.loadLocked()

	stored := models.StoredEvent{
		ID:         uuid.New().String(),
		Type:       event.Type,
		DeviceType: deviceType,
		Data:       event.Data,
	}
	events = append(events, stored)

	if len(events) > MaxStoredEvents {
		events = events[len(events)-MaxStoredEvents:]
	}

	if err := s.writeLocked(events); err != nil {
		return models.StoredEvent{}, err
	}
	return stored, nil
}

// Load returns the full event log. A missing or unreadable file is an
// empty log, not an error: stats must always compute.
func (s *AnalyticsStore) Load() []models.StoredEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *AnalyticsStore) loadLocked() []models.StoredEvent {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to read analytics file, starting empty", zap.Error(err))
		}
		return []models.StoredEvent{}
	}

	var events []models.StoredEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		s.log.Warn("failed to parse analytics file, starting empty", zap.Error(err))
		return []models.StoredEvent{}
	}
	return events
}

func (s *AnalyticsStore) writeLocked(events []models.StoredEvent) error {
	payload, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analytics events: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write analytics file: %w", err)
	}
	return nil
}
