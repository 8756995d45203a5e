package interfaces

import (
	"errors"
	"fmt"
	"net"

	mdeth "github.com/mdlayher/ethernet"
	"github.com/mdlayher/raw"
	"github.com/terassyi/arpsend/pkg/packet/ethernet"
)

var (
	ErrSocketOpen = errors.New("failed to open socket")
	ErrSend       = errors.New("failed to send frame")
)

// Iface is a packet socket bound to one interface.
type Iface interface {
	Name() string
	Recv([]byte) (int, error)
	Send([]byte) (int, error)
	Close() error
	Address() ethernet.HardwareAddress
}

// AfPacket is an AF_PACKET socket bound to the ARP ethertype. In link-layer
// mode frames carry the ethernet header; otherwise the kernel builds and
// strips it and buffers hold only the ARP header and body.
type AfPacket struct {
	conn   net.PacketConn
	handle *Handle
}

func Open(h *Handle, linkLayer bool) (*AfPacket, error) {
	conn, err := raw.ListenPacket(h.netInterface(), uint16(mdeth.EtherTypeARP), &raw.Config{
		LinuxSockDGRAM: !linkLayer,
	})
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrSocketOpen, h.Name, err)
	}
	return &AfPacket{
		conn:   conn,
		handle: h,
	}, nil
}

func (af *AfPacket) Name() string {
	return af.handle.Name
}

func (af *AfPacket) Address() ethernet.HardwareAddress {
	return af.handle.HardwareAddress
}

func (af *AfPacket) Recv(buf []byte) (int, error) {
	n, _, err := af.conn.ReadFrom(buf)
	return n, err
}

// Send transmits buf to the broadcast address. A short write is an error.
func (af *AfPacket) Send(buf []byte) (int, error) {
	n, err := af.conn.WriteTo(buf, &raw.Addr{
		HardwareAddr: ethernet.BroadcastAddress.Bytes(),
	})
	if err != nil {
		return n, fmt.Errorf("%w on %s: %v", ErrSend, af.handle.Name, err)
	}
	if n != len(buf) {
		return n, fmt.Errorf("%w on %s: wrote %d of %d bytes", ErrSend, af.handle.Name, n, len(buf))
	}
	return n, nil
}

func (af *AfPacket) Close() error {
	return af.conn.Close()
}
