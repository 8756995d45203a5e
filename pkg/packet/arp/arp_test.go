package arp

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terassyi/arpsend/pkg/packet/ethernet"
	"github.com/terassyi/arpsend/pkg/packet/ipv4"
)

var (
	srcMAC = ethernet.HardwareAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	dstMAC = ethernet.HardwareAddress{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}
	srcIP  = ipv4.IPAddress{10, 0, 0, 1}
	dstIP  = ipv4.IPAddress{10, 0, 0, 2}
)

func testOptions(op string, linkLayer bool) FrameOptions {
	return FrameOptions{
		Operation: op,
		LinkLayer: linkLayer,
		SourceMAC: "aa:bb:cc:dd:ee:ff",
		SourceIP:  "10.0.0.1",
		TargetMAC: "11:22:33:44:55:66",
		TargetIP:  "10.0.0.2",
	}
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("request")
	require.NoError(t, err)
	assert.Equal(t, ARP_REQUEST, op)

	op, err = ParseOperation("reply")
	require.NoError(t, err)
	assert.Equal(t, ARP_REPLY, op)

	for _, in := range []string{"", "Request", "REPLY", "requests", "req", "reply ", "rarp"} {
		_, err := ParseOperation(in)
		assert.ErrorIs(t, err, ErrUnknownOperation, in)
	}
}

func TestWriteHeader(t *testing.T) {
	b := make([]byte, ARPHeaderSize)
	n, err := WriteHeader(b, ARP_REPLY)
	require.NoError(t, err)
	assert.Equal(t, ARPHeaderSize, n)
	assert.Equal(t, []byte{0x00, 0x01, 0x08, 0x00, 0x06, 0x04, 0x00, 0x02}, b)
}

func TestWriteHeaderUnknownOperation(t *testing.T) {
	b := make([]byte, ARPHeaderSize)
	n, err := WriteHeader(b, OperationCode(3))
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Zero(t, n)
	assert.Equal(t, make([]byte, ARPHeaderSize), b)
}

func TestWriteShortBuffer(t *testing.T) {
	_, err := WriteHeader(make([]byte, ARPHeaderSize-1), ARP_REQUEST)
	assert.ErrorIs(t, err, io.ErrShortBuffer)
	_, err = WriteBody(make([]byte, ARPBodySize-1), srcMAC, srcIP, dstMAC, dstIP)
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestWriteBody(t *testing.T) {
	b := make([]byte, ARPBodySize)
	n, err := WriteBody(b, srcMAC, srcIP, dstMAC, dstIP)
	require.NoError(t, err)
	assert.Equal(t, ARPBodySize, n)
	assert.Equal(t, []byte{
		0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
		0x0a, 0x00, 0x00, 0x01,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0x0a, 0x00, 0x00, 0x02,
	}, b)
}

func TestBuildLength(t *testing.T) {
	for _, op := range []string{"request", "reply"} {
		frame, err := Build(testOptions(op, true))
		require.NoError(t, err)
		assert.Len(t, frame, 42)
		assert.Equal(t, FrameSize(true), len(frame))

		frame, err = Build(testOptions(op, false))
		require.NoError(t, err)
		assert.Len(t, frame, 28)
		assert.Equal(t, FrameSize(false), len(frame))
	}
}

func TestBuildLayout(t *testing.T) {
	frame, err := Build(testOptions("request", true))
	require.NoError(t, err)

	assert.Equal(t, dstMAC.Bytes(), frame[0:6])
	assert.Equal(t, srcMAC.Bytes(), frame[6:12])
	assert.Equal(t, []byte{0x08, 0x06}, frame[12:14])
	assert.Equal(t, uint16(1), binary.BigEndian.Uint16(frame[14:16]))
	assert.Equal(t, uint16(0x0800), binary.BigEndian.Uint16(frame[16:18]))
	assert.Equal(t, []byte{6, 4}, frame[18:20])
	assert.Equal(t, uint16(1), binary.BigEndian.Uint16(frame[20:22]))
	assert.Equal(t, srcMAC.Bytes(), frame[22:28])
	assert.Equal(t, uint32(0x0a000001), binary.BigEndian.Uint32(frame[28:32]))
	assert.Equal(t, dstMAC.Bytes(), frame[32:38])
	assert.Equal(t, uint32(0x0a000002), binary.BigEndian.Uint32(frame[38:42]))
}

func TestBuildWithoutLinkLayer(t *testing.T) {
	withLink, err := Build(testOptions("reply", true))
	require.NoError(t, err)
	frame, err := Build(testOptions("reply", false))
	require.NoError(t, err)

	assert.Equal(t, withLink[ethernet.HeaderSize:], frame)
	assert.Equal(t, uint16(2), binary.BigEndian.Uint16(frame[6:8]))
}

func TestBuildErrors(t *testing.T) {
	opts := testOptions("Request", true)
	opts.SourceMAC = "garbage"
	frame, err := Build(opts)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Nil(t, frame)

	for _, mutate := range []func(*FrameOptions){
		func(o *FrameOptions) { o.SourceMAC = "aa:bb:cc:dd:ee" },
		func(o *FrameOptions) { o.TargetMAC = "11:22:33:44:55:66:77" },
		func(o *FrameOptions) { o.SourceIP = "10.0.0" },
		func(o *FrameOptions) { o.TargetIP = "10.0.0.300" },
	} {
		opts := testOptions("request", true)
		mutate(&opts)
		frame, err := Build(opts)
		assert.ErrorIs(t, err, ethernet.ErrMalformedAddress)
		assert.Nil(t, frame)
	}
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder().Header(OperationCode(9)).Body(srcMAC, srcIP, dstMAC, dstIP)
	assert.Zero(t, b.Len())
	_, err := b.Bytes()
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestBuilderCursor(t *testing.T) {
	b := NewBuilder()
	b.Link(dstMAC, srcMAC)
	assert.Equal(t, 14, b.Len())
	b.Header(ARP_REQUEST)
	assert.Equal(t, 22, b.Len())
	b.Body(srcMAC, srcIP, dstMAC, dstIP)
	assert.Equal(t, 42, b.Len())

	// A full builder has no room left.
	_, err := b.Body(srcMAC, srcIP, dstMAC, dstIP).Bytes()
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestPacketString(t *testing.T) {
	p := &Packet{
		Header:                Header{OpCode: ARP_REQUEST},
		SourceHardwareAddress: srcMAC,
		SourceProtocolAddress: srcIP,
		TargetProtocolAddress: dstIP,
	}
	assert.Equal(t, "who-has 10.0.0.2 tell 10.0.0.1 (aa:bb:cc:dd:ee:ff)", p.String())
	p.Header.OpCode = ARP_REPLY
	assert.Equal(t, "10.0.0.1 is-at aa:bb:cc:dd:ee:ff", p.String())
}
