package photoactivation

// Lookup is a name-keyed map that iterates in field order.
type Lookup[T any] struct {
	names []string
	items map[string]T
}

func newLookup[T any](capacity int) *Lookup[T] {
	return &Lookup[T]{
		names: make([]string, 0, capacity),
		items: make(map[string]T, capacity),
	}
}

func (l *Lookup[T]) put(name string, item T) {
	if _, ok := l.items[name]; !ok {
		l.names = append(l.names, name)
	}
	l.items[name] = item
}

func (l *Lookup[T]) Get(name string) (T, bool) {
	item, ok := l.items[name]
	return item, ok
}

// Names returns the keys in insertion order.
func (l *Lookup[T]) Names() []string {
	return append([]string(nil), l.names...)
}

func (l *Lookup[T]) Len() int {
	return len(l.names)
}

// Each calls fn for every entry in insertion order.
func (l *Lookup[T]) Each(fn func(name string, item T)) {
	for _, name := range l.names {
		fn(name, l.items[name])
	}
}
