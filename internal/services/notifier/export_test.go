package notifier

import "time"

// SetClock подменяет часы в тестах.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
