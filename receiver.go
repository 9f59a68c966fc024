package easyosc

import (
	"io"
	"log"
	"os"

	"github.com/easyosc/go-easyosc/osc"
)

// Source is where a Receiver pulls decoded messages from. *osc.Receiver
// satisfies it; tests and non-UDP transports can supply their own.
type Source interface {
	HasWaiting() bool
	NextMessage() *osc.Message
}

// Receiver routes incoming messages to registered listeners. Registration,
// removal and Update must all happen on the same goroutine; the usual shape is
// a frame or tick loop that calls Update once per pass.
type Receiver struct {
	src Source

	// Logger receives decode diagnostics and listener panics. Defaults to
	// the standard logger.
	Logger *log.Logger

	bindings map[string][]*listener
	def      *listener

	counting bool
	arrivals map[string]int
}

// New wraps an existing message source.
func New(src Source) *Receiver {
	return &Receiver{
		src:      src,
		Logger:   log.New(os.Stderr, "easyosc: ", log.LstdFlags),
		bindings: make(map[string][]*listener),
	}
}

// ListenUDP opens a UDP port and returns a Receiver pulling from it.
func ListenUDP(addr string) (*Receiver, error) {
	src, err := osc.ListenUDP(addr)
	if err != nil {
		return nil, err
	}
	return New(src), nil
}

// Close shuts down the underlying source if it is closable.
func (r *Receiver) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// badDest returns a listener that logs the unsupported destination type each
// time a message would have been delivered to it. Registration never fails.
func (r *Receiver) badDest(dest interface{}) *listener {
	return &listener{kind: listenerClosure, invoke: func(m *osc.Message) {
		r.Logger.Printf("no decoder for destination type %T (address %s)", dest, m.Address)
	}}
}

// Add registers destinations for an address. Each destination is either a
// pointer to a variable that gets overwritten per message, or a function
// value invoked per message. Function values registered here are treated as
// closures: they cannot be removed individually, only via RemoveClosures.
// Calling Add with no destinations still registers the address, which matters
// only for arrival counting.
//
// Returns the receiver for chaining.
func (r *Receiver) Add(address string, dests ...interface{}) *Receiver {
	ls := r.bindings[address]
	for _, d := range dests {
		l := newClosureListener(d)
		if l == nil {
			l = newVariableListener(d)
		}
		if l == nil {
			r.Logger.Printf("no decoder for destination type %T (address %s)", d, address)
			l = r.badDest(d)
		}
		ls = append(ls, l)
	}
	r.bindings[address] = ls
	return r
}

// AddFunc registers a named function for an address. Unlike Add, the function
// is identified by its code pointer and can later be removed with RemoveFunc.
func (r *Receiver) AddFunc(address string, fn interface{}) *Receiver {
	l := newFuncListener(fn)
	if l == nil {
		r.Logger.Printf("no decoder for function type %T (address %s)", fn, address)
		l = r.badDest(fn)
	}
	r.bindings[address] = append(r.bindings[address], l)
	return r
}

// AddMethod registers a bound method for an address: recv is the receiver
// value and method is a method expression such as (*Player).Play. The method
// may take zero arguments or one decodable argument after the receiver.
func (r *Receiver) AddMethod(address string, recv, method interface{}) *Receiver {
	l := newMethodListener(recv, method)
	if l == nil {
		r.Logger.Printf("cannot bind method %T on %T (address %s)", method, recv, address)
		l = r.badDest(method)
	}
	r.bindings[address] = append(r.bindings[address], l)
	return r
}

// removeIf drops listeners for address matching the probe.
func (r *Receiver) removeIf(address string, probe *listener) {
	ls, ok := r.bindings[address]
	if !ok {
		return
	}
	kept := ls[:0]
	for _, l := range ls {
		if !l.equals(probe) {
			kept = append(kept, l)
		}
	}
	r.bindings[address] = kept
}

// Remove unregisters listeners. With no destinations it drops the whole
// address binding. With destinations it drops only the variable listeners
// bound to those exact pointers.
func (r *Receiver) Remove(address string, dests ...interface{}) *Receiver {
	if len(dests) == 0 {
		delete(r.bindings, address)
		return r
	}
	for _, d := range dests {
		r.removeIf(address, &listener{kind: listenerVariable, target: d})
	}
	return r
}

// RemoveFunc unregisters a function previously added with AddFunc.
func (r *Receiver) RemoveFunc(address string, fn interface{}) *Receiver {
	r.removeIf(address, &listener{kind: listenerFunc, entry: funcEntry(fn)})
	return r
}

// RemoveMethod unregisters a method previously added with AddMethod. Both the
// receiver and the method expression must match.
func (r *Receiver) RemoveMethod(address string, recv, method interface{}) *Receiver {
	r.removeIf(address, &listener{
		kind:   listenerMethod,
		target: recv,
		entry:  funcEntry(method),
	})
	return r
}

// RemoveClosures drops every closure listener for an address, leaving
// variables, named functions and methods in place.
func (r *Receiver) RemoveClosures(address string) *Receiver {
	ls, ok := r.bindings[address]
	if !ok {
		return r
	}
	kept := ls[:0]
	for _, l := range ls {
		if l.kind != listenerClosure {
			kept = append(kept, l)
		}
	}
	r.bindings[address] = kept
	return r
}

// RemoveAll drops every binding. The default listener and counting state are
// untouched.
func (r *Receiver) RemoveAll() *Receiver {
	r.bindings = make(map[string][]*listener)
	return r
}

// SetDefault installs a catch-all invoked for messages whose address has no
// binding. fn must be func() or func(*osc.Message).
func (r *Receiver) SetDefault(fn interface{}) *Receiver {
	switch fn.(type) {
	case func(), func(*osc.Message):
		r.def = newClosureListener(fn)
	default:
		r.Logger.Printf("default listener must be func() or func(*osc.Message), got %T", fn)
		r.def = r.badDest(fn)
	}
	return r
}

// SetDefaultMethod installs a bound method as the catch-all.
func (r *Receiver) SetDefaultMethod(recv, method interface{}) *Receiver {
	l := newMethodListener(recv, method)
	if l == nil {
		r.Logger.Printf("cannot bind default method %T on %T", method, recv)
		l = r.badDest(method)
	}
	r.def = l
	return r
}

// ClearDefault removes the catch-all listener.
func (r *Receiver) ClearDefault() *Receiver {
	r.def = nil
	return r
}

// CountIncoming toggles per-address arrival counting. Enabling it resets the
// counts; disabling it discards them.
func (r *Receiver) CountIncoming(on bool) *Receiver {
	if on {
		r.arrivals = make(map[string]int)
	} else {
		r.arrivals = nil
	}
	r.counting = on
	return r
}

// GotMessage reports how many messages arrived for address during the last
// Update. Returns -1 when counting is disabled.
func (r *Receiver) GotMessage(address string) int {
	if !r.counting {
		return -1
	}
	return r.arrivals[address]
}

// Arrivals returns a copy of the per-address counts from the last Update, or
// nil when counting is disabled.
func (r *Receiver) Arrivals() map[string]int {
	if !r.counting {
		return nil
	}
	out := make(map[string]int, len(r.arrivals))
	for k, v := range r.arrivals {
		out[k] = v
	}
	return out
}

// Update drains the source and dispatches every waiting message to its
// listeners, in registration order. Messages for unbound addresses go to the
// default listener when one is set. Counts reflect only this pass.
func (r *Receiver) Update() {
	if r.counting {
		r.arrivals = make(map[string]int)
	}
	for r.src.HasWaiting() {
		m := r.src.NextMessage()
		if m == nil {
			break
		}
		r.dispatch(m)
	}
}

func (r *Receiver) dispatch(m *osc.Message) {
	if r.counting {
		r.arrivals[m.Address]++
	}

	ls, ok := r.bindings[m.Address]
	if !ok {
		if r.def != nil {
			r.deliver(r.def, m)
		}
		return
	}

	// Listeners may register or remove listeners while being invoked, so
	// dispatch walks a snapshot.
	snap := make([]*listener, len(ls))
	copy(snap, ls)
	for _, l := range snap {
		r.deliver(l, m)
	}
}

func (r *Receiver) deliver(l *listener, m *osc.Message) {
	defer func() {
		if err := recover(); err != nil {
			r.Logger.Printf("listener for %s panicked: %v", m.Address, err)
		}
	}()
	l.invoke(m)
}
