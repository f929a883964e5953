package container

// IndexedPriorityQueue is a binary min-heap over comparable keys K with an
// O(1) Contains check and an O(log n) DecreaseKey, used by Priority-Flood
// and A* where a site already queued may need its priority lowered in
// place rather than re-inserted as a duplicate.
type IndexedPriorityQueue[K comparable] struct {
	items    []K
	priority []float64 // parallel to items
	pos      map[K]int // key -> index in items; absent keys have no entry
}

// NewIndexedPriorityQueue creates an empty indexed priority queue.
func NewIndexedPriorityQueue[K comparable]() *IndexedPriorityQueue[K] {
	return &IndexedPriorityQueue[K]{
		pos: make(map[K]int),
	}
}

// Len returns the number of elements currently queued.
func (q *IndexedPriorityQueue[K]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue has no elements.
func (q *IndexedPriorityQueue[K]) IsEmpty() bool { return len(q.items) == 0 }

// Contains reports whether key is currently queued, in O(1).
func (q *IndexedPriorityQueue[K]) Contains(key K) bool {
	_, ok := q.pos[key]
	return ok
}

// Push inserts key with the given priority. If key is already present,
// Push decreases its key when p is lower than its current priority;
// otherwise it is a no-op, matching the spec: "push with an already-present
// element decreases its key if the new priority is lower; otherwise no-op."
func (q *IndexedPriorityQueue[K]) Push(key K, p float64) {
	if idx, ok := q.pos[key]; ok {
		if p < q.priority[idx] {
			q.priority[idx] = p
			q.siftUp(idx)
		}
		return
	}
	q.items = append(q.items, key)
	q.priority = append(q.priority, p)
	idx := len(q.items) - 1
	q.pos[key] = idx
	q.siftUp(idx)
}

// DecreaseKey lowers key's priority to p. It is a no-op if key is absent
// or p is not lower than the current priority.
func (q *IndexedPriorityQueue[K]) DecreaseKey(key K, p float64) {
	idx, ok := q.pos[key]
	if !ok || p >= q.priority[idx] {
		return
	}
	q.priority[idx] = p
	q.siftUp(idx)
}

// Priority returns the current priority of key and whether it is queued.
func (q *IndexedPriorityQueue[K]) Priority(key K) (float64, bool) {
	idx, ok := q.pos[key]
	if !ok {
		return 0, false
	}
	return q.priority[idx], true
}

// Pop removes and returns the key with the minimum priority. Panics if the
// queue is empty; callers should check IsEmpty first.
func (q *IndexedPriorityQueue[K]) Pop() K {
	top := q.items[0]
	n := len(q.items) - 1
	q.swap(0, n)
	q.items = q.items[:n]
	q.priority = q.priority[:n]
	delete(q.pos, top)
	if n > 0 {
		q.siftDown(0)
	}
	return top
}

func (q *IndexedPriorityQueue[K]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.priority[i], q.priority[j] = q.priority[j], q.priority[i]
	q.pos[q.items[i]] = i
	q.pos[q.items[j]] = j
}

func (q *IndexedPriorityQueue[K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.priority[i] >= q.priority[parent] {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *IndexedPriorityQueue[K]) siftDown(i int) {
	n := len(q.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && q.priority[left] < q.priority[smallest] {
			smallest = left
		}
		if right < n && q.priority[right] < q.priority[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
