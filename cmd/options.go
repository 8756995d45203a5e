package cmd

import (
	"errors"
	"fmt"

	"github.com/terassyi/arpsend/pkg/interfaces"
	"github.com/terassyi/arpsend/pkg/proto/arp"
)

var ErrUsage = errors.New("usage error")

// Options holds the parsed command line of the send command.
type Options struct {
	Iface       string
	Type        string
	NoLinkLayer bool
	Debug       bool
	Args        []string
}

// Validate checks what the flag package cannot: the interface name and the
// four positional addresses.
func (o *Options) Validate() error {
	if o.Iface == "" {
		return fmt.Errorf("%w: -i <interface name> is required", ErrUsage)
	}
	if err := interfaces.ValidateName(o.Iface); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(o.Args) != 4 {
		return fmt.Errorf("%w: expected source_mac source_ip dest_mac dest_ip, got %d arguments", ErrUsage, len(o.Args))
	}
	return nil
}

func (o *Options) Config() arp.Config {
	return arp.Config{
		Iface:     o.Iface,
		Operation: o.Type,
		LinkLayer: !o.NoLinkLayer,
		SourceMAC: o.Args[0],
		SourceIP:  o.Args[1],
		TargetMAC: o.Args[2],
		TargetIP:  o.Args[3],
		Debug:     o.Debug,
	}
}
