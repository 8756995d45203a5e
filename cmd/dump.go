package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/terassyi/arpsend/pkg/packet/arp"
	proto "github.com/terassyi/arpsend/pkg/proto/arp"
)

// maxLength bounds the per-frame read buffer.
const maxLength = 65535

type DumpCommand struct {
	Iface       string
	NoLinkLayer bool
	Length      int
	Debug       bool
}

func (*DumpCommand) Name() string {
	return "dump"
}

func (*DumpCommand) Synopsis() string {
	return "dump arp frames"
}

func (*DumpCommand) Usage() string {
	return `arpsend dump -i <interface name> [-n] [-length <bytes>]:
	dump arp frames received by the interface
`
}

func (d *DumpCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.Iface, "i", "", "interface name")
	f.BoolVar(&d.NoLinkLayer, "n", false, "capture without the link-layer header")
	f.IntVar(&d.Length, "length", 0, "bytes read per frame (default: one arp frame)")
	f.BoolVar(&d.Debug, "debug", false, "output debug message")
}

func (d *DumpCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logrus.WithFields(logrus.Fields{
		"command": "dump",
	})
	if d.Iface == "" || d.Length < 0 || d.Length > maxLength || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	length := d.Length
	if length == 0 {
		length = arp.FrameSize(!d.NoLinkLayer)
	}
	t, err := proto.NewListener(d.Iface, !d.NoLinkLayer, nil, d.Debug)
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	if err := t.Listen(length); err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
