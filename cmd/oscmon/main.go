// Command oscmon is a terminal monitor for incoming traffic. It listens on a
// UDP port, tallies per-address arrival rates and shows the latest arguments
// seen for each address.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	easyosc "github.com/easyosc/go-easyosc"
)

var (
	listenAddr string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "oscmon",
	Short: "Watch incoming OSC traffic in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("listen") || cfg.Listen == "" {
			cfg.Listen = listenAddr
		}

		recv, err := easyosc.ListenUDP(cfg.Listen)
		if err != nil {
			return err
		}
		defer recv.Close()

		p := tea.NewProgram(newModel(recv, cfg))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.Flags().StringVarP(&listenAddr, "listen", "l", "127.0.0.1:8765", "host:port to listen on")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
