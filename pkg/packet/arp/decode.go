package arp

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/terassyi/arpsend/pkg/packet/ethernet"
	"github.com/terassyi/arpsend/pkg/packet/ipv4"
)

// Decode parses a captured frame. linkLayer tells whether b starts with an
// ethernet header or directly with the ARP header.
func Decode(b []byte, linkLayer bool) (*Packet, error) {
	first := layers.LayerTypeARP
	if linkLayer {
		first = layers.LayerTypeEthernet
	}
	packet := gopacket.NewPacket(b, first, gopacket.Default)
	if errLayer := packet.ErrorLayer(); errLayer != nil {
		return nil, fmt.Errorf("decode frame: %v", errLayer.Error())
	}
	layer := packet.Layer(layers.LayerTypeARP)
	if layer == nil {
		return nil, fmt.Errorf("frame does not carry arp")
	}
	a := layer.(*layers.ARP)
	if a.AddrType != layers.LinkTypeEthernet || a.Protocol != layers.EthernetTypeIPv4 {
		return nil, fmt.Errorf("unsupported arp hardware type %v protocol %v", a.AddrType, a.Protocol)
	}

	p := &Packet{
		Header: Header{
			HardwareType: HardwareType(a.AddrType),
			ProtocolType: ProtocolType(a.Protocol),
			HardwareSize: a.HwAddressSize,
			ProtocolSize: a.ProtAddressSize,
			OpCode:       OperationCode(a.Operation),
		},
	}
	var err error
	if p.SourceHardwareAddress, err = ethernet.Address(a.SourceHwAddress); err != nil {
		return nil, err
	}
	if p.SourceProtocolAddress, err = ipv4.Address(a.SourceProtAddress); err != nil {
		return nil, err
	}
	if p.TargetHardwareAddress, err = ethernet.Address(a.DstHwAddress); err != nil {
		return nil, err
	}
	if p.TargetProtocolAddress, err = ipv4.Address(a.DstProtAddress); err != nil {
		return nil, err
	}
	return p, nil
}
