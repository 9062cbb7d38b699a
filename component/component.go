// Package component is the message-driven runtime behind the wizard: a tree
// of nodes with activation flags, a FIFO bus of tagged messages, and the
// rules for delivering keys and messages through the tree.
package component

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Msg is a tagged string message carried on the bus.
type Msg string

const (
	MsgBuilderNext         Msg = "builder:next"
	MsgBuilderPrev         Msg = "builder:prev"
	MsgBuilderRestart      Msg = "builder:restart"
	MsgBuilderDone         Msg = "builder:done"
	MsgCommittingCommitted Msg = "committing:committed"
	MsgCommittingFailed    Msg = "committing:failed"
	MsgCommittingDone      Msg = "committing:done"
	MsgHelpToggle          Msg = "help:toggle"
	MsgQuit                Msg = "app:quit"
)

// Publisher enqueues messages. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(Msg)
}

// Action tells the runtime what to do after a node handled a key.
type Action int

const (
	// ActionNone lets the key continue to active children.
	ActionNone Action = iota
	// ActionConsumed stops delivery.
	ActionConsumed
	// ActionQuit stops delivery and ends the program.
	ActionQuit
)

// Node is one element of the component tree.
type Node interface {
	Active() bool
	SetActive(active bool)
	Children() *Children
	Register(pub Publisher)
	OnKey(key tea.KeyMsg) Action
	OnMessage(msg Msg)
	View(width, height int) string
}

// Ticker is implemented by nodes with time-based decoration.
type Ticker interface {
	OnTick()
}

// Base implements the bookkeeping half of Node and is embedded by every
// component.
type Base struct {
	active   bool
	children *Children
	pub      Publisher
}

func (b *Base) Active() bool {
	return b.active
}

func (b *Base) SetActive(active bool) {
	b.active = active
}

func (b *Base) Children() *Children {
	if b.children == nil {
		b.children = NewChildren()
	}
	return b.children
}

func (b *Base) Register(pub Publisher) {
	b.pub = pub
}

// Publisher returns the handle received during registration.
func (b *Base) Publisher() Publisher {
	return b.pub
}

// Publish sends msg through the registered publisher, dropping it when the
// node has not been registered yet.
func (b *Base) Publish(msg Msg) {
	if b.pub == nil {
		return
	}
	b.pub.Publish(msg)
}

func (b *Base) OnKey(tea.KeyMsg) Action {
	return ActionNone
}

func (b *Base) OnMessage(Msg) {}

func (b *Base) View(int, int) string {
	return ""
}

// Children is an ordered set of named nodes. Insertion order is dispatch order.
type Children struct {
	names []string
	nodes map[string]Node
}

func NewChildren() *Children {
	return &Children{nodes: make(map[string]Node)}
}

// Add appends a child, replacing any node already stored under name.
func (c *Children) Add(name string, node Node) *Children {
	if node == nil {
		return c
	}
	if _, exists := c.nodes[name]; !exists {
		c.names = append(c.names, name)
	}
	c.nodes[name] = node
	return c
}

func (c *Children) Get(name string) (Node, bool) {
	if c == nil {
		return nil, false
	}
	node, ok := c.nodes[name]
	return node, ok
}

func (c *Children) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Each visits children in insertion order.
func (c *Children) Each(fn func(name string, node Node)) {
	if c == nil {
		return
	}
	for _, name := range c.Names() {
		fn(name, c.nodes[name])
	}
}

// Activate marks name active and every sibling inactive.
func (c *Children) Activate(name string) {
	c.Each(func(key string, node Node) {
		node.SetActive(key == name)
	})
}

// ActiveName returns the first active child.
func (c *Children) ActiveName() (string, bool) {
	if c == nil {
		return "", false
	}
	for _, name := range c.names {
		if c.nodes[name].Active() {
			return name, true
		}
	}
	return "", false
}
