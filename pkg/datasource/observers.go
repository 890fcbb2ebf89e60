package datasource

import (
	"sync"

	"golang.org/x/exp/slices"
)

// observers is a registry of change observers.
type observers[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func([]T)
}

func (o *observers[T]) subscribe(fn func([]T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.fns == nil {
		o.fns = make(map[int]func([]T))
	}

	id := o.next
	o.next++
	o.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.fns, id)
		})
	}
}

// notify calls all observers in registration order. Observers are called
// without holding the lock so they may unsubscribe themselves.
func (o *observers[T]) notify(records []T) {
	o.mu.Lock()
	ids := make([]int, 0, len(o.fns))
	for id := range o.fns {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fns := make([]func([]T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, o.fns[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(append(make([]T, 0, len(records)), records...))
	}
}
