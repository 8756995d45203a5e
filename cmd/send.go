package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/terassyi/arpsend/pkg/proto/arp"
)

type SendCommand struct {
	Options
}

func (*SendCommand) Name() string {
	return "send"
}

func (*SendCommand) Synopsis() string {
	return "send an arp request or reply"
}

func (*SendCommand) Usage() string {
	return `arpsend send -i <interface name> [-t request | reply] [-n] source_mac source_ip dest_mac dest_ip:
	send one arp frame; after a request, print every arp frame received
`
}

func (s *SendCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.Iface, "i", "", "interface name")
	f.StringVar(&s.Type, "t", "request", "arp operation (request | reply)")
	f.BoolVar(&s.NoLinkLayer, "n", false, "let the kernel build the link-layer header")
	f.BoolVar(&s.Debug, "debug", false, "output debug message")
}

func (s *SendCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logrus.WithFields(logrus.Fields{
		"command": "send",
	})
	s.Args = f.Args()
	if err := s.Validate(); err != nil {
		log.Error(err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	t, err := arp.New(s.Config())
	if err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	if err := t.Run(); err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
