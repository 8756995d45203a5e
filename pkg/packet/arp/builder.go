package arp

import (
	"github.com/terassyi/arpsend/pkg/packet/ethernet"
	"github.com/terassyi/arpsend/pkg/packet/ipv4"
)

// FrameSize returns the length of a frame built with or without the
// link-layer header.
func FrameSize(linkLayer bool) int {
	if linkLayer {
		return ethernet.HeaderSize + ARPHeaderSize + ARPBodySize
	}
	return ARPHeaderSize + ARPBodySize
}

// Builder owns the backing storage of a single frame and a write cursor.
// The first failing step sticks; later steps are no-ops.
type Builder struct {
	buf [42]byte
	off int
	err error
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Link(dst, src ethernet.HardwareAddress) *Builder {
	return b.write(func(p []byte) (int, error) {
		return ethernet.WriteHeader(p, dst, src)
	})
}

func (b *Builder) Header(op OperationCode) *Builder {
	return b.write(func(p []byte) (int, error) {
		return WriteHeader(p, op)
	})
}

func (b *Builder) Body(sha ethernet.HardwareAddress, spa ipv4.IPAddress, tha ethernet.HardwareAddress, tpa ipv4.IPAddress) *Builder {
	return b.write(func(p []byte) (int, error) {
		return WriteBody(p, sha, spa, tha, tpa)
	})
}

func (b *Builder) write(f func([]byte) (int, error)) *Builder {
	if b.err != nil {
		return b
	}
	n, err := f(b.buf[b.off:])
	if err != nil {
		b.err = err
		return b
	}
	b.off += n
	return b
}

// Len is the current cursor position.
func (b *Builder) Len() int {
	return b.off
}

// Bytes returns a copy of the written frame.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	frame := make([]byte, b.off)
	copy(frame, b.buf[:b.off])
	return frame, nil
}

type FrameOptions struct {
	Operation string
	LinkLayer bool
	SourceMAC string
	SourceIP  string
	TargetMAC string
	TargetIP  string
}

// Build parses the text form of every field and serializes a frame.
// The operation is checked first so an unknown operation never yields bytes.
func Build(opts FrameOptions) ([]byte, error) {
	op, err := ParseOperation(opts.Operation)
	if err != nil {
		return nil, err
	}
	sha, err := ethernet.ParseAddress(opts.SourceMAC)
	if err != nil {
		return nil, err
	}
	spa, err := ipv4.ParseAddress(opts.SourceIP)
	if err != nil {
		return nil, err
	}
	tha, err := ethernet.ParseAddress(opts.TargetMAC)
	if err != nil {
		return nil, err
	}
	tpa, err := ipv4.ParseAddress(opts.TargetIP)
	if err != nil {
		return nil, err
	}

	b := NewBuilder()
	if opts.LinkLayer {
		b.Link(tha, sha)
	}
	return b.Header(op).Body(sha, spa, tha, tpa).Bytes()
}
