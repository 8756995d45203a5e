package arp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/terassyi/arpsend/pkg/interfaces"
	"github.com/terassyi/arpsend/pkg/logger"
	"github.com/terassyi/arpsend/pkg/packet/arp"
	"github.com/terassyi/arpsend/pkg/packet/ethernet"
	"github.com/terassyi/arpsend/pkg/util"
)

var (
	ErrEmptyResponse = errors.New("empty arp response")
	ErrReceive       = errors.New("failed to receive frame")
)

type Config struct {
	Iface     string
	Operation string
	LinkLayer bool
	SourceMAC string
	SourceIP  string
	TargetMAC string
	TargetIP  string
	// Output receives the hex dumps. Defaults to stdout.
	Output io.Writer
	Debug  bool
}

// Transceiver sends one ARP frame out of one interface and, for requests,
// prints every frame that comes back until it is killed or a read fails.
// Replies are not matched against the request.
type Transceiver struct {
	iface     string
	linkLayer bool
	op        arp.OperationCode
	frame     []byte
	state     state
	out       io.Writer
	logger    *logger.Logger

	resolve func(string) (*interfaces.Handle, error)
	open    func(*interfaces.Handle, bool) (interfaces.Iface, error)
	sleep   func(time.Duration)
}

// New validates the configuration and builds the frame. No network I/O
// happens before Run.
func New(cfg Config) (*Transceiver, error) {
	if err := interfaces.ValidateName(cfg.Iface); err != nil {
		return nil, err
	}
	op, err := arp.ParseOperation(cfg.Operation)
	if err != nil {
		return nil, err
	}
	frame, err := arp.Build(arp.FrameOptions{
		Operation: cfg.Operation,
		LinkLayer: cfg.LinkLayer,
		SourceMAC: cfg.SourceMAC,
		SourceIP:  cfg.SourceIP,
		TargetMAC: cfg.TargetMAC,
		TargetIP:  cfg.TargetIP,
	})
	if err != nil {
		return nil, err
	}
	t := newTransceiver(cfg.Iface, cfg.LinkLayer, cfg.Output, cfg.Debug)
	t.op = op
	t.frame = frame
	return t, nil
}

// NewListener returns a Transceiver that never sends; Listen only runs the
// receive loop.
func NewListener(iface string, linkLayer bool, out io.Writer, debug bool) (*Transceiver, error) {
	if err := interfaces.ValidateName(iface); err != nil {
		return nil, err
	}
	return newTransceiver(iface, linkLayer, out, debug), nil
}

func newTransceiver(iface string, linkLayer bool, out io.Writer, debug bool) *Transceiver {
	if out == nil {
		out = os.Stdout
	}
	return &Transceiver{
		iface:     iface,
		linkLayer: linkLayer,
		state:     IDLE,
		out:       out,
		logger:    logger.New(debug, "arp"),
		resolve:   interfaces.Resolve,
		open:      openIface,
		sleep:     time.Sleep,
	}
}

func openIface(h *interfaces.Handle, linkLayer bool) (interfaces.Iface, error) {
	af, err := interfaces.Open(h, linkLayer)
	if err != nil {
		return nil, err
	}
	return af, nil
}

// Frame returns the serialized frame.
func (t *Transceiver) Frame() []byte {
	return t.frame
}

func (t *Transceiver) transition(s state) {
	t.logger.DebugFieldf("from", t.state.String(), "state %s", s)
	t.state = s
}

func (t *Transceiver) fatal(err error) error {
	t.transition(FATAL)
	return err
}

// Run resolves the interface, opens the socket and sends the frame. After a
// request it enters ReceiveLoop and only returns on error.
func (t *Transceiver) Run() error {
	iface, err := t.setup()
	if err != nil {
		return t.fatal(err)
	}
	defer t.close(iface)

	if _, err := iface.Send(t.frame); err != nil {
		return t.fatal(err)
	}
	t.transition(SENT)
	t.logger.Infof("sent %s of %d bytes on %s (%s)", t.op, len(t.frame), iface.Name(), iface.Address())

	if t.op != arp.ARP_REQUEST {
		t.transition(EXIT)
		return nil
	}
	return t.ReceiveLoop(iface, len(t.frame))
}

// Listen runs the receive loop without sending, reading frames of length bytes.
func (t *Transceiver) Listen(length int) error {
	iface, err := t.setup()
	if err != nil {
		return t.fatal(err)
	}
	defer t.close(iface)
	return t.ReceiveLoop(iface, length)
}

func (t *Transceiver) setup() (interfaces.Iface, error) {
	h, err := t.resolve(t.iface)
	if err != nil {
		return nil, err
	}
	t.transition(INTERFACE_RESOLVED)
	t.logger.Debugf("resolved %s", h)

	iface, err := t.open(h, t.linkLayer)
	if err != nil {
		return nil, err
	}
	t.transition(SOCKET_OPEN)
	return iface, nil
}

func (t *Transceiver) close(iface interfaces.Iface) {
	if err := iface.Close(); err != nil {
		t.logger.Warnf("close %s: %v", iface.Name(), err)
	}
}

// ReceiveLoop blocks on iface for frames of length bytes, dumps each one and
// waits ReceiveInterval before the next read. It never returns nil.
func (t *Transceiver) ReceiveLoop(iface interfaces.Iface, length int) error {
	t.transition(RECEIVE_LOOP)
	for {
		buf := make([]byte, length)
		n, err := iface.Recv(buf)
		if err != nil {
			return t.fatal(fmt.Errorf("%w on %s: %v", ErrReceive, iface.Name(), err))
		}
		if n == 0 {
			return t.fatal(fmt.Errorf("%w on %s", ErrEmptyResponse, iface.Name()))
		}
		if err := util.HexDump(t.out, buf); err != nil {
			return t.fatal(err)
		}
		t.summarize(buf[:n])
		t.sleep(ReceiveInterval)
	}
}

func (t *Transceiver) summarize(b []byte) {
	if !t.logger.DebugMode() {
		return
	}
	if t.linkLayer {
		header, err := ethernet.ReadHeader(b)
		if err != nil {
			t.logger.Debugf("undecodable frame: %v", err)
			return
		}
		if header.Type != ethernet.ETHER_TYPE_ARP {
			t.logger.Debugf("skip ethertype 0x%04x from %s", uint16(header.Type), header.Src)
			return
		}
	}
	p, err := arp.Decode(b, t.linkLayer)
	if err != nil {
		t.logger.Debugf("undecodable frame: %v", err)
		return
	}
	t.logger.Debug(p.String())
}
