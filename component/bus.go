package component

import "sync"

// Bus is a multi-producer, single-consumer FIFO queue of messages.
type Bus struct {
	mu    sync.Mutex
	queue []Msg
	wake  chan struct{}
}

func NewBus() *Bus {
	return &Bus{wake: make(chan struct{}, 1)}
}

// Publish appends msg and signals the consumer without blocking.
func (b *Bus) Publish(msg Msg) {
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Pop removes the oldest message.
func (b *Bus) Pop() (Msg, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queue) == 0 {
		return "", false
	}
	msg := b.queue[0]
	b.queue[0] = ""
	b.queue = b.queue[1:]
	return msg, true
}

func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Wake fires at least once after any Publish that happened since the last receive.
func (b *Bus) Wake() <-chan struct{} {
	return b.wake
}
