package frame

// Signal tracks whether the page is hidden and tells subscribers when that
// changes.
type Signal struct {
	hidden bool
	nextID int
	subs   map[int]func(hidden bool)
	order  []int
}

func NewSignal() *Signal {
	return &Signal{subs: make(map[int]func(bool))}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (s *Signal) Subscribe(fn func(hidden bool)) func() {
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Set records the new state and notifies subscribers if it changed.
func (s *Signal) Set(hidden bool) {
	if s.hidden == hidden {
		return
	}
	s.hidden = hidden

	ids := append([]int(nil), s.order...)
	for _, id := range ids {
		if fn, ok := s.subs[id]; ok {
			fn(hidden)
		}
	}
}

func (s *Signal) Hidden() bool { return s.hidden }

// Subscribers reports the number of live subscriptions.
func (s *Signal) Subscribers() int { return len(s.subs) }
