package ipv4

import (
	"fmt"
	"net/netip"

	"github.com/terassyi/arpsend/pkg/packet/ethernet"
)

// ErrMalformedAddress wraps ethernet.ErrMalformedAddress so either can be
// matched by errors.Is.
var ErrMalformedAddress = fmt.Errorf("ipv4: %w", ethernet.ErrMalformedAddress)

type IPAddress [4]byte

func NewIPAddress(addr []byte) IPAddress {
	return IPAddress{addr[0], addr[1], addr[2], addr[3]}
}

func (ipaddr IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ipaddr[0], ipaddr[1], ipaddr[2], ipaddr[3])
}

func (ipaddr IPAddress) Bytes() []byte {
	return ipaddr[:]
}

func Address(addr []byte) (IPAddress, error) {
	if len(addr) != 4 {
		return IPAddress{}, fmt.Errorf("%w: invalid address %v", ErrMalformedAddress, addr)
	}
	return NewIPAddress(addr), nil
}

// ParseAddress parses a dotted-decimal quad. Shorthand forms such as "10.1",
// octets with a leading zero and IPv6 literals are rejected.
func ParseAddress(s string) (IPAddress, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPAddress{}, fmt.Errorf("%w: %v", ErrMalformedAddress, err)
	}
	if !addr.Is4() {
		return IPAddress{}, fmt.Errorf("%w: %q is not an ipv4 address", ErrMalformedAddress, s)
	}
	return IPAddress(addr.As4()), nil
}
