package arp

import "time"

const (
	IDLE               state = 0
	INTERFACE_RESOLVED state = 1
	SOCKET_OPEN        state = 2
	SENT               state = 3
	RECEIVE_LOOP       state = 4
	EXIT               state = 5
	FATAL              state = 6
)

// ReceiveInterval is the pause between two captured frames.
const ReceiveInterval time.Duration = time.Second

type state int

func (s state) String() string {
	switch s {
	case IDLE:
		return "IDLE"
	case INTERFACE_RESOLVED:
		return "INTERFACE_RESOLVED"
	case SOCKET_OPEN:
		return "SOCKET_OPEN"
	case SENT:
		return "SENT"
	case RECEIVE_LOOP:
		return "RECEIVE_LOOP"
	case EXIT:
		return "EXIT"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
