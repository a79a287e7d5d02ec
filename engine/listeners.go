package engine

import "sync"

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Listeners is a registration list whose Add returns the paired remove
// Hosts use it to fan out resize and pointer notifications
type Listeners[T any] struct {
	mu   sync.Mutex
	next uint64
	fns  []listener[T]
}

// Add registers fn; the returned remove is idempotent
func (l *Listeners[T]) Add(fn func(T)) (remove func()) {
	l.mu.Lock()
	l.next++
	id := l.next
	l.fns = append(l.fns, listener[T]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			for i, e := range l.fns {
				if e.id == id {
					l.fns = append(l.fns[:i], l.fns[i+1:]...)
					return
				}
			}
		})
	}
}

// Emit calls every registered listener in registration order
// Listeners may remove themselves during Emit
func (l *Listeners[T]) Emit(v T) {
	l.mu.Lock()
	if len(l.fns) == 0 {
		l.mu.Unlock()
		return
	}
	fns := make([]func(T), len(l.fns))
	for i, e := range l.fns {
		fns[i] = e.fn
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Len returns the number of registered listeners
func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
