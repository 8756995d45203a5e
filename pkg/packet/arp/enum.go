package arp

const (
	ARPHeaderSize int = 8
	ARPBodySize   int = 20
)

const HARDWARE_ETHERNET HardwareType = 1

const PROTOCOL_IPv4 ProtocolType = 0x0800

const (
	ARP_REQUEST OperationCode = 0x0001
	ARP_REPLY   OperationCode = 0x0002
)

const (
	hardwareSize uint8 = 6
	protocolSize uint8 = 4
)
