package main

import (
	"github.com/odit-bit/spesabot/cmd"
	"github.com/spf13/cobra"
)

func main() {
	rootCMD := cobra.Command{Use: "spesabot"}
	rootCMD.AddCommand(
		&cmd.ServerCMD,
		&cmd.BotCMD,
		&cmd.ChatCMD,
	)
	rootCMD.Execute()
}
