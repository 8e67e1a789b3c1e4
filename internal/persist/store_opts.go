package persist

import "time"

type StoreOpt func(*Store)

// WithSlot changes the asset id games are saved under.
func WithSlot(slot string) StoreOpt {
	return func(s *Store) {
		s.slot = slot
	}
}

// WithScoreLimit changes how many results Scores returns.
func WithScoreLimit(limit int) StoreOpt {
	return func(s *Store) {
		s.limit = limit
	}
}

// WithClock replaces the clock used to stamp saves.
func WithClock(now func() time.Time) StoreOpt {
	return func(s *Store) {
		s.now = now
	}
}
