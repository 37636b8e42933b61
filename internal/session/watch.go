package session

import "log/slog"

// Subscribe registers for session change snapshots. A snapshot is
// delivered after hydration completes and after every login and
// logout. The returned cancel function releases the subscription and
// closes the channel; it is safe to call more than once.
//
// Delivery is non-blocking: a subscriber that falls behind its
// buffer misses intermediate snapshots, never blocks a transition.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	s.watchMu.Lock()
	id := s.nextWatcher
	s.nextWatcher++
	s.watchers[id] = ch
	s.watchMu.Unlock()

	cancel := func() {
		s.watchMu.Lock()
		defer s.watchMu.Unlock()
		if _, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(ch)
		}
	}

	return ch, cancel
}

// SubscriberCount returns the number of live subscriptions
func (s *Store) SubscriberCount() int {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	return len(s.watchers)
}

// notify fans the committed state out to subscribers
func (s *Store) notify() {
	snap := s.Snapshot()

	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	for id, ch := range s.watchers {
		select {
		case ch <- snap:
		default:
			s.logger.Warn("session snapshot dropped - subscriber buffer full",
				slog.Int("subscriber", id))
		}
	}
}
