// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// maas-netview connects to a MAAS region controller, fetches the
// network topology, and prints the fabrics or spaces table the web
// console would show.
package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uitable"
	"github.com/juju/ansiterm"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"github.com/canonical/maas-netview/core/cache"
	"github.com/canonical/maas-netview/core/netmodel"
	"github.com/canonical/maas-netview/core/netview"
	"github.com/canonical/maas-netview/internal/maassource"
	"github.com/canonical/maas-netview/viewmodel"
)

func main() {
	os.Exit(Main(os.Args[1:]))
}

// Main runs the command and returns the process exit code.
func Main(args []string) int {
	flags := gnuflag.NewFlagSet("maas-netview", gnuflag.ContinueOnError)
	var (
		maasURL   = flags.String("maas-url", "", "region controller API endpoint, e.g. http://maas:5240/MAAS")
		apiKey    = flags.String("api-key", "", "MAAS API key")
		view      = flags.String("view", "fabrics", "table to print: fabrics or spaces")
		logConfig = flags.String("log-config", "<root>=WARNING", "loggo configuration")
	)
	if err := flags.Parse(true, args); err != nil {
		if err == gnuflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if err := loggo.ConfigureLoggers(*logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	tab := netview.Tab(*view)
	if !tab.Valid() {
		fmt.Fprintf(os.Stderr, "error: unknown view %q\n", *view)
		return 2
	}
	if *maasURL == "" || *apiKey == "" {
		fmt.Fprintln(os.Stderr, "error: --maas-url and --api-key are required")
		return 2
	}

	if err := run(*maasURL, *apiKey, tab, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func run(maasURL, apiKey string, tab netview.Tab, out *os.File) error {
	client, err := maassource.Connect(maasURL, apiKey)
	if err != nil {
		return err
	}

	store := cache.NewController()
	if err := maassource.Seed(store, client); err != nil {
		return err
	}

	subnets := viewmodel.NewSubnets(store)
	if err := subnets.SelectTab(tab); err != nil {
		return err
	}

	writer := ansiterm.NewWriter(out)
	fmt.Fprintln(writer, subnets.Title())
	fmt.Fprintln(writer, renderTable(subnets))
	return nil
}

func renderTable(subnets *viewmodel.Subnets) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 60

	if subnets.ActiveTab() == netview.TabSpaces {
		table.AddRow("SPACE", "FABRIC", "VLAN", "SUBNET")
		for _, row := range subnets.SpaceTable() {
			if len(row.Rows) == 0 {
				table.AddRow(row.Space.Name, "", "", "")
				continue
			}
			for _, entry := range row.Rows {
				table.AddRow(
					row.Space.Name,
					fabricName(entry.Fabric),
					vlanName(entry.VLAN),
					subnetCIDR(entry.Subnet),
				)
			}
		}
		return table
	}

	table.AddRow("FABRIC", "VLAN", "SPACE", "SUBNET")
	for _, row := range subnets.FabricTable() {
		if len(row.Rows) == 0 {
			table.AddRow(row.Fabric.Name, "", "", "")
			continue
		}
		for _, entry := range row.Rows {
			table.AddRow(
				row.Fabric.Name,
				vlanName(entry.VLAN),
				spaceName(entry.Space),
				subnetCIDR(entry.Subnet),
			)
		}
	}
	return table
}

func fabricName(fabric *netmodel.Fabric) string {
	if fabric == nil {
		return ""
	}
	return fabric.Name
}

func vlanName(vlan *netmodel.VLAN) string {
	if vlan == nil {
		return ""
	}
	if vlan.Name != "" {
		return vlan.Name
	}
	return fmt.Sprintf("vid %d", vlan.VID)
}

func spaceName(space *netmodel.Space) string {
	if space == nil {
		return ""
	}
	return space.Name
}

func subnetCIDR(subnet *netmodel.Subnet) string {
	if subnet == nil {
		return ""
	}
	return subnet.CIDR
}
