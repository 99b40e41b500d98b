package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/Kareem-create21/SilentSetup/pkg/daemon"
	"github.com/Kareem-create21/SilentSetup/pkg/signal"
)

func main() {
	kpApp := kingpin.New("silentsetupd", "Installer project builder daemon.")

	startCmd := kpApp.Command("start", "Start silentsetupd.").
		Default().
		Action(func(c *kingpin.ParseContext) error {
			logrus.SetOutput(os.Stdout)
			logrus.SetFormatter(&logrus.TextFormatter{
				DisableColors: true,
				FullTimestamp: true,
			})

			d := daemon.NewDefaultSilentSetupd()
			err := d.Start()
			if err != nil {
				fmt.Printf("Start: %v\n", err)
				os.Exit(1)
			}

			// listen for SIGTERM and block
			signal.WaitForProcessInterruption(func() {
				d.Stop()
				os.Exit(0)
			})
			return nil
		})
	daemon.DefineFlags(startCmd, daemon.DefaultConfig)

	kingpin.MustParse(kpApp.Parse(os.Args[1:]))
}
