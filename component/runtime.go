package component

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Runtime binds a component tree to a bus and implements delivery.
type Runtime struct {
	root Node
	bus  *Bus
	taps []func(Msg)
}

// RuntimeOption mutates runtime configuration.
type RuntimeOption func(*Runtime)

// WithTap registers a listener invoked for every dispatched message.
func WithTap(fn func(Msg)) RuntimeOption {
	return func(r *Runtime) {
		if fn == nil {
			return
		}
		r.taps = append(r.taps, fn)
	}
}

// NewRuntime registers bus with every node in the tree before returning.
func NewRuntime(root Node, bus *Bus, opts ...RuntimeOption) *Runtime {
	if bus == nil {
		bus = NewBus()
	}
	r := &Runtime{root: root, bus: bus}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	walk(root, func(node Node) {
		node.Register(bus)
	})
	return r
}

func (r *Runtime) Bus() *Bus {
	return r.bus
}

func (r *Runtime) Root() Node {
	return r.root
}

// HandleKey walks the active path from the root. Inactive nodes never see
// the key; a non-None action stops the walk.
func (r *Runtime) HandleKey(key tea.KeyMsg) Action {
	if r.root == nil || !r.root.Active() {
		return ActionNone
	}
	return deliverKey(r.root, key)
}

func deliverKey(node Node, key tea.KeyMsg) Action {
	if act := node.OnKey(key); act != ActionNone {
		return act
	}
	var result Action
	node.Children().Each(func(_ string, child Node) {
		if result != ActionNone || !child.Active() {
			return
		}
		result = deliverKey(child, key)
	})
	return result
}

// Dispatch offers msg to every node, active or not, parent before children.
func (r *Runtime) Dispatch(msg Msg) {
	for _, tap := range r.taps {
		tap(msg)
	}
	walk(r.root, func(node Node) {
		node.OnMessage(msg)
	})
}

// Drain dispatches queued messages until the queue is empty, including any
// published while draining, and returns them in dispatch order.
func (r *Runtime) Drain() []Msg {
	var dispatched []Msg
	for {
		msg, ok := r.bus.Pop()
		if !ok {
			return dispatched
		}
		r.Dispatch(msg)
		dispatched = append(dispatched, msg)
	}
}

// Tick forwards a clock tick to every Ticker in the tree.
func (r *Runtime) Tick() {
	walk(r.root, func(node Node) {
		if ticker, ok := node.(Ticker); ok {
			ticker.OnTick()
		}
	})
}

func (r *Runtime) View(width, height int) string {
	if r.root == nil {
		return ""
	}
	return r.root.View(width, height)
}

func walk(node Node, fn func(Node)) {
	if node == nil {
		return
	}
	fn(node)
	node.Children().Each(func(_ string, child Node) {
		walk(child, fn)
	})
}
