package osc

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultQueueSize is the number of parsed messages a Receiver buffers before
// it starts dropping packets.
const DefaultQueueSize = 1024

// Receiver listens for incoming OSC packets and buffers the parsed messages on
// an internal queue. It never pushes: the owner drains the queue with
// HasWaiting/NextMessage whenever it wants, typically once per frame.
//
// Bundles are flattened into their messages. Elements of a bundle whose time
// tag lies in the future are queued when the tag expires.
type Receiver struct {
	conn  net.PacketConn
	queue chan *Message
	done  chan struct{}
	log   *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// ListenUDP starts a Receiver on the given UDP address. Pass ":0" style
// addresses to let the kernel pick a port; LocalAddr reports the result.
func ListenUDP(addr string) (*Receiver, error) {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "ListenUDP")
	}
	return Listen(conn, DefaultQueueSize, nil), nil
}

// Listen starts a Receiver reading from conn. A queueSize of zero or less
// selects DefaultQueueSize, a nil logger selects the standard logger. The
// Receiver owns conn and closes it on Close.
func Listen(conn net.PacketConn, queueSize int, logger *log.Logger) *Receiver {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = log.Default()
	}

	r := &Receiver{
		conn:  conn,
		queue: make(chan *Message, queueSize),
		done:  make(chan struct{}),
		log:   logger,
	}
	go r.readLoop()

	return r
}

// LocalAddr returns the local network address the Receiver is listening on.
func (r *Receiver) LocalAddr() net.Addr {
	return r.conn.LocalAddr()
}

// HasWaiting reports whether at least one message is buffered.
func (r *Receiver) HasWaiting() bool {
	return len(r.queue) > 0
}

// NextMessage removes and returns the oldest buffered message. It never
// blocks; it returns nil when the queue is empty.
func (r *Receiver) NextMessage() *Message {
	select {
	case m := <-r.queue:
		return m
	default:
		return nil
	}
}

// Close stops the read loop and closes the connection.
func (r *Receiver) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
		r.closeErr = r.conn.Close()
	})
	return r.closeErr
}

// readLoop reads packets from the connection until Close. Temporary network
// errors back off with the usual doubling delay.
func (r *Receiver) readLoop() {
	var tempDelay time.Duration
	for {
		buf := bPool.Get().(*[]byte)

		n, _, err := r.conn.ReadFrom(*buf)
		if err != nil {
			bPool.Put(buf)
			select {
			case <-r.done:
				return
			default:
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			r.log.Printf("osc: read error, stopping receiver: %v", err)
			return
		}
		tempDelay = 0

		data := make([]byte, n)
		copy(data, (*buf)[:n])
		bPool.Put(buf)

		p, err := parsePacket(data)
		if err != nil {
			r.log.Printf("osc: dropping malformed packet: %v", err)
			continue
		}
		r.enqueue(p)
	}
}

// enqueue flattens a packet onto the message queue, honoring bundle time tags.
// A full queue drops the message with a diagnostic rather than blocking the
// read loop.
func (r *Receiver) enqueue(p Packet) {
	switch p := p.(type) {
	case *Message:
		select {
		case r.queue <- p:
		default:
			r.log.Printf("osc: receive queue full, dropping message for %s", p.Address)
		}

	case *Bundle:
		if d := p.Timetag.ExpiresIn(); d > 0 {
			elements := p.Elements
			time.AfterFunc(d, func() {
				for _, el := range elements {
					r.enqueue(el)
				}
			})
			return
		}
		for _, el := range p.Elements {
			r.enqueue(el)
		}
	}
}
