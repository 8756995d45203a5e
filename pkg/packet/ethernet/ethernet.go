package ethernet

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	mdeth "github.com/mdlayher/ethernet"
)

// HeaderSize is the length of an ethernet header without VLAN tags.
const HeaderSize int = 14

var ErrMalformedAddress = errors.New("malformed address")

type HardwareAddress [6]byte

type EtherType uint16

const ETHER_TYPE_ARP EtherType = EtherType(mdeth.EtherTypeARP)

var BroadcastAddress = HardwareAddress{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

type EthernetHeader struct {
	Dst  HardwareAddress
	Src  HardwareAddress
	Type EtherType
}

func (hwaddr HardwareAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", hwaddr[0], hwaddr[1], hwaddr[2], hwaddr[3], hwaddr[4], hwaddr[5])
}

func (hwaddr HardwareAddress) Bytes() []byte {
	return hwaddr[:]
}

// Address copies a 6 byte slice into a HardwareAddress.
func Address(data []byte) (HardwareAddress, error) {
	var addr HardwareAddress
	if len(data) != len(addr) {
		return addr, fmt.Errorf("%w: hardware address length %d", ErrMalformedAddress, len(data))
	}
	copy(addr[:], data)
	return addr, nil
}

// ParseAddress parses the colon separated form xx:xx:xx:xx:xx:xx.
// Every group must be exactly two hex digits; missing or extra groups are rejected.
func ParseAddress(s string) (HardwareAddress, error) {
	var addr HardwareAddress
	groups := strings.Split(s, ":")
	if len(groups) != len(addr) {
		return addr, fmt.Errorf("%w: %q has %d groups", ErrMalformedAddress, s, len(groups))
	}
	for i, g := range groups {
		if len(g) != 2 {
			return addr, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
		}
		b, err := hex.DecodeString(g)
		if err != nil {
			return addr, fmt.Errorf("%w: %q: %v", ErrMalformedAddress, s, err)
		}
		addr[i] = b[0]
	}
	return addr, nil
}

// WriteHeader writes a link-layer header carrying ARP into b and returns
// the number of bytes written.
func WriteHeader(b []byte, dst, src HardwareAddress) (int, error) {
	if len(b) < HeaderSize {
		return 0, io.ErrShortBuffer
	}
	copy(b[0:6], dst[:])
	copy(b[6:12], src[:])
	binary.BigEndian.PutUint16(b[12:14], uint16(ETHER_TYPE_ARP))
	return HeaderSize, nil
}

// ReadHeader is the inverse of WriteHeader.
func ReadHeader(b []byte) (*EthernetHeader, error) {
	if len(b) < HeaderSize {
		return nil, io.ErrUnexpectedEOF
	}
	header := &EthernetHeader{Type: EtherType(binary.BigEndian.Uint16(b[12:14]))}
	copy(header.Dst[:], b[0:6])
	copy(header.Src[:], b[6:12])
	return header, nil
}
