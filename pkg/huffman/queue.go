package huffman

// PriorityQueue is an ordered singly linked list keyed by frequency.
// Enqueue scans from the head and places the new entry before the first
// entry with a strictly greater priority, so entries of equal priority
// keep their insertion order. That FIFO tie-break decides which
// equal-frequency subtrees merge first and therefore the exact shape of
// the tree; it is part of the output format, not an implementation
// detail.
type PriorityQueue struct {
	head *queueEntry
	tail *queueEntry
}

type queueEntry struct {
	node     *Node
	priority uint64
	next     *queueEntry
}

// Enqueue inserts node at the position dictated by priority, after all
// existing entries of equal or lower priority.
func (q *PriorityQueue) Enqueue(node *Node, priority uint64) {
	entry := &queueEntry{node: node, priority: priority}
	if q.head == nil {
		q.head = entry
		q.tail = entry
		return
	}
	if priority < q.head.priority {
		entry.next = q.head
		q.head = entry
		return
	}
	if priority >= q.tail.priority {
		q.tail.next = entry
		q.tail = entry
		return
	}
	curr := q.head
	for curr.next != nil && curr.next.priority <= priority {
		curr = curr.next
	}
	entry.next = curr.next
	curr.next = entry
}

// Dequeue removes and returns the lowest-priority node, earliest-inserted
// first among ties. It returns nil when the queue is empty.
func (q *PriorityQueue) Dequeue() *Node {
	if q.head == nil {
		return nil
	}
	node := q.head.node
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	return node
}

// Size counts the entries currently in the queue.
func (q *PriorityQueue) Size() int {
	count := 0
	for e := q.head; e != nil; e = e.next {
		count++
	}
	return count
}
