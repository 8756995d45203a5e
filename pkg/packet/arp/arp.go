package arp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/terassyi/arpsend/pkg/packet/ethernet"
	"github.com/terassyi/arpsend/pkg/packet/ipv4"
)

var ErrUnknownOperation = errors.New("unknown arp operation")

type Header struct {
	HardwareType HardwareType
	ProtocolType ProtocolType
	HardwareSize uint8
	ProtocolSize uint8
	OpCode       OperationCode
}

type Packet struct {
	Header                Header
	SourceHardwareAddress ethernet.HardwareAddress
	SourceProtocolAddress ipv4.IPAddress
	TargetHardwareAddress ethernet.HardwareAddress
	TargetProtocolAddress ipv4.IPAddress
}

type HardwareType uint16
type ProtocolType uint16
type OperationCode uint16

func (op OperationCode) String() string {
	switch op {
	case ARP_REQUEST:
		return "(REQUEST)"
	case ARP_REPLY:
		return "(REPLY)"
	default:
		return "(UNKNOWN)"
	}
}

// ParseOperation maps the literal tokens "request" and "reply" to opcodes.
// Matching is exact and case sensitive.
func ParseOperation(s string) (OperationCode, error) {
	switch s {
	case "request":
		return ARP_REQUEST, nil
	case "reply":
		return ARP_REPLY, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// String renders the packet the way tcpdump does.
func (arp *Packet) String() string {
	switch arp.Header.OpCode {
	case ARP_REQUEST:
		return fmt.Sprintf("who-has %s tell %s (%s)", arp.TargetProtocolAddress, arp.SourceProtocolAddress, arp.SourceHardwareAddress)
	case ARP_REPLY:
		return fmt.Sprintf("%s is-at %s", arp.SourceProtocolAddress, arp.SourceHardwareAddress)
	default:
		return fmt.Sprintf("opcode %d from %s (%s)", uint16(arp.Header.OpCode), arp.SourceProtocolAddress, arp.SourceHardwareAddress)
	}
}

/*
 0                   1                   2                   3
 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|         Hardware Type         |         Protocol Type         |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|  HW Length    | Proto Length  |           Operation           |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/

// WriteHeader writes the fixed Ethernet/IPv4 ARP header into b.
// Nothing is written when op is neither a request nor a reply.
func WriteHeader(b []byte, op OperationCode) (int, error) {
	if op != ARP_REQUEST && op != ARP_REPLY {
		return 0, fmt.Errorf("%w: opcode %d", ErrUnknownOperation, uint16(op))
	}
	if len(b) < ARPHeaderSize {
		return 0, io.ErrShortBuffer
	}
	binary.BigEndian.PutUint16(b[0:2], uint16(HARDWARE_ETHERNET))
	binary.BigEndian.PutUint16(b[2:4], uint16(PROTOCOL_IPv4))
	b[4] = hardwareSize
	b[5] = protocolSize
	binary.BigEndian.PutUint16(b[6:8], uint16(op))
	return ARPHeaderSize, nil
}

// WriteBody writes sender and target address pairs into b.
func WriteBody(b []byte, sha ethernet.HardwareAddress, spa ipv4.IPAddress, tha ethernet.HardwareAddress, tpa ipv4.IPAddress) (int, error) {
	if len(b) < ARPBodySize {
		return 0, io.ErrShortBuffer
	}
	n := copy(b, sha[:])
	n += copy(b[n:], spa[:])
	n += copy(b[n:], tha[:])
	n += copy(b[n:], tpa[:])
	return n, nil
}
