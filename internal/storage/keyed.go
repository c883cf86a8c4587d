package storage

// keyed is a string-keyed container that remembers insertion order.
// Overwriting a key keeps its original position; removal drops it from the order.
type keyed[T any] struct {
	items map[string]T
	order []string
}

func newKeyed[T any]() keyed[T] {
	return keyed[T]{items: make(map[string]T)}
}

// put stores v under key. An existing key keeps its position.
func (k *keyed[T]) put(key string, v T) {
	if _, exists := k.items[key]; !exists {
		k.order = append(k.order, key)
	}
	k.items[key] = v
}

func (k *keyed[T]) get(key string) (T, bool) {
	v, ok := k.items[key]
	return v, ok
}

func (k *keyed[T]) has(key string) bool {
	_, ok := k.items[key]
	return ok
}

// remove deletes key and reports whether anything was removed.
func (k *keyed[T]) remove(key string) bool {
	if _, ok := k.items[key]; !ok {
		return false
	}
	delete(k.items, key)
	for i, o := range k.order {
		if o == key {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	return true
}

// values returns a snapshot in insertion order.
func (k *keyed[T]) values() []T {
	out := make([]T, 0, len(k.order))
	for _, key := range k.order {
		out = append(out, k.items[key])
	}
	return out
}

// find returns the first value in insertion order matching pred.
func (k *keyed[T]) find(pred func(T) bool) (T, bool) {
	for _, key := range k.order {
		if v := k.items[key]; pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// filter returns every value matching pred, in insertion order.
func (k *keyed[T]) filter(pred func(T) bool) []T {
	out := []T{}
	for _, key := range k.order {
		if v := k.items[key]; pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (k *keyed[T]) len() int { return len(k.order) }

func (k *keyed[T]) reset() {
	k.items = make(map[string]T)
	k.order = nil
}
