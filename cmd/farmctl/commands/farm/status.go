// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/internal/config"
	"github.com/pisilinux/farmctl/pkg/hardware"
	"github.com/pisilinux/farmctl/pkg/systemd"
)

var (
	statusTitleStyle = lipgloss.NewStyle().Bold(true)
	statusAttrStyle  = lipgloss.NewStyle().Bold(true)
	statusOkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusBadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the farm",
	Long:  "Report the runtime daemon, the farm image, managed containers and host resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.Get()

		var b strings.Builder
		b.WriteString(statusTitleStyle.Render("Farm status") + "\n")

		daemonActive, err := systemd.IsServiceActive(ctx, cfg.Docker.Service)
		if err != nil {
			statusLine(&b, "Daemon", statusBadStyle.Render(fmt.Sprintf("unknown (%v)", err)))
		} else if daemonActive {
			statusLine(&b, "Daemon", statusOkStyle.Render("active")+statusDimStyle.Render(" ("+cfg.Docker.Service+")"))
		} else {
			statusLine(&b, "Daemon", statusBadStyle.Render("inactive")+statusDimStyle.Render(" ("+cfg.Docker.Service+")"))
		}

		// image and container state are only reachable through a live daemon
		if daemonActive {
			client := newClient()

			if exists, err := client.ImageExists(ctx, cfg.Farm.Image); err != nil {
				statusLine(&b, "Image", statusBadStyle.Render(fmt.Sprintf("unknown (%v)", err)))
			} else if exists {
				statusLine(&b, "Image", statusOkStyle.Render("present")+statusDimStyle.Render(" ("+cfg.Farm.Image+")"))
			} else {
				statusLine(&b, "Image", statusBadStyle.Render("absent")+statusDimStyle.Render(" ("+cfg.Farm.Image+")"))
			}

			if containers, err := client.ListContainers(ctx); err != nil {
				statusLine(&b, "Containers", statusBadStyle.Render(fmt.Sprintf("unknown (%v)", err)))
			} else if len(containers) == 0 {
				statusLine(&b, "Containers", statusDimStyle.Render("none"))
			} else {
				statusLine(&b, "Containers", fmt.Sprintf("%d managed (%s)", len(containers), strings.Join(containers, ", ")))
			}
		} else {
			statusLine(&b, "Image", statusDimStyle.Render("unknown, daemon not running"))
			statusLine(&b, "Containers", statusDimStyle.Render("unknown, daemon not running"))
		}

		profile := hardware.GetHostProfile()
		statusLine(&b, "Host", statusDimStyle.Render(profile.String()))

		cmd.Print(b.String())
		return nil
	},
}

func statusLine(b *strings.Builder, attr, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n", statusAttrStyle.Render(attr+":"), value))
}
