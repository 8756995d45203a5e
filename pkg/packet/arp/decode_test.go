package arp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	for _, linkLayer := range []bool{true, false} {
		frame, err := Build(testOptions("request", linkLayer))
		require.NoError(t, err)

		p, err := Decode(frame, linkLayer)
		require.NoError(t, err)
		assert.Equal(t, ARP_REQUEST, p.Header.OpCode)
		assert.Equal(t, uint8(6), p.Header.HardwareSize)
		assert.Equal(t, uint8(4), p.Header.ProtocolSize)
		assert.Equal(t, srcMAC, p.SourceHardwareAddress)
		assert.Equal(t, srcIP, p.SourceProtocolAddress)
		assert.Equal(t, dstMAC, p.TargetHardwareAddress)
		assert.Equal(t, dstIP, p.TargetProtocolAddress)
	}
}

func TestDecodeNotARP(t *testing.T) {
	frame, err := Build(testOptions("reply", true))
	require.NoError(t, err)
	// ethertype IPv4
	frame[12], frame[13] = 0x08, 0x00
	_, err = Decode(frame, true)
	assert.Error(t, err)
}

func TestDecodeTruncated(t *testing.T) {
	frame, err := Build(testOptions("reply", false))
	require.NoError(t, err)
	_, err = Decode(frame[:10], false)
	assert.Error(t, err)
}
