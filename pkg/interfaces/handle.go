package interfaces

import (
	"errors"
	"fmt"
	"net"

	"github.com/terassyi/arpsend/pkg/packet/ethernet"
	"golang.org/x/sys/unix"
)

var (
	ErrInvalidInterfaceName = errors.New("invalid interface name")
	ErrUnknownInterface     = errors.New("unknown interface")
	ErrInterfaceQuery       = errors.New("interface query failed")
)

// Handle is a network interface resolved once at startup.
type Handle struct {
	Name            string
	Index           int
	HardwareAddress ethernet.HardwareAddress
}

// ValidateName rejects names the kernel could never match: empty ones and
// ones that do not fit IFNAMSIZ with the terminating NUL.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidInterfaceName)
	}
	if len(name) >= unix.IFNAMSIZ {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidInterfaceName, name, unix.IFNAMSIZ-1)
	}
	return nil
}

// Resolve looks up the index and hardware address of the named interface.
func Resolve(name string) (*Handle, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	index, err := siocgifindex(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownInterface, name, err)
	}
	hwaddr, err := siocgifhwaddr(name)
	if err != nil {
		return nil, fmt.Errorf("%w: hardware address of %s: %v", ErrInterfaceQuery, name, err)
	}
	addr, err := ethernet.Address(hwaddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInterfaceQuery, err)
	}
	return &Handle{
		Name:            name,
		Index:           int(index),
		HardwareAddress: addr,
	}, nil
}

func (h *Handle) netInterface() *net.Interface {
	return &net.Interface{
		Index:        h.Index,
		Name:         h.Name,
		HardwareAddr: net.HardwareAddr(h.HardwareAddress.Bytes()),
	}
}

func (h *Handle) String() string {
	return fmt.Sprintf("%s (index %d, hwaddr %s)", h.Name, h.Index, h.HardwareAddress)
}
