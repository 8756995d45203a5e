package interfaces

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

type sockaddr struct {
	family uint16
	addr   [14]byte
}

// ioctl issues an interface request on a throwaway AF_INET socket, which
// needs no privilege and never touches the link layer.
func ioctl(req uint, ifreq unsafe.Pointer) error {
	soc, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(soc)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), uintptr(req), uintptr(ifreq)); errno != 0 {
		return errno
	}
	return nil
}

func siocgifindex(name string) (int32, error) {
	ifreq := struct {
		name  [unix.IFNAMSIZ]byte
		index int32
		_pad  [20]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if err := ioctl(unix.SIOCGIFINDEX, unsafe.Pointer(&ifreq)); err != nil {
		return 0, err
	}
	return ifreq.index, nil
}

func siocgifhwaddr(name string) ([]byte, error) {
	ifreq := struct {
		name [unix.IFNAMSIZ]byte
		addr sockaddr
		_pad [8]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if err := ioctl(unix.SIOCGIFHWADDR, unsafe.Pointer(&ifreq)); err != nil {
		return nil, err
	}
	return ifreq.addr.addr[:6], nil
}
