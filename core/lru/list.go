package lru

// recencyList orders entries from most to least recently used. head is the
// most recently used entry, tail the next eviction candidate. All operations
// are O(1) pointer manipulation; locking is the cache's responsibility.
type recencyList struct {
	head *entry
	tail *entry
}

// pushFront makes e the most recently used entry. e must not be linked.
func (l *recencyList) pushFront(e *entry) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
}

// remove unlinks e, relinking its neighbors and updating head/tail.
func (l *recencyList) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

// moveToFront promotes e to most recently used.
func (l *recencyList) moveToFront(e *entry) {
	if l.head == e {
		return
	}
	l.remove(e)
	l.pushFront(e)
}
