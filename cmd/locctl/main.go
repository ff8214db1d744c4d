// Command locctl is a thin consumer of package locdb: given a database
// file and zero or more IP addresses, it prints the database's metadata
// or, for each address, the network that matched.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ipfire-project/locdb/pkg/locdb"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "locctl [addr...]",
		Short: "Query an IPFire location database",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			defer logger.Sync() //nolint:errcheck

			return run(cmd, dbPath, args, logger)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "location.db", "path to the location database")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log opening and lookup steps")
	return cmd
}

func run(cmd *cobra.Command, dbPath string, addrs []string, logger *zap.Logger) error {
	logger.Debug("opening database", zap.String("path", dbPath))
	db, err := locdb.Open(dbPath, locdb.OpenOptions{Advise: true})
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	if len(addrs) == 0 {
		fmt.Fprintf(out, "Created at: %s\n", db.CreatedAt())
		fmt.Fprintf(out, "Vendor: %s\n", db.Vendor(locdb.ReadOptions{}))
		fmt.Fprintf(out, "Description: %s\n", db.Description(locdb.ReadOptions{}))
		fmt.Fprintf(out, "License: %s\n", db.License(locdb.ReadOptions{}))
		return nil
	}

	for _, a := range addrs {
		ip := net.ParseIP(a)
		if ip == nil {
			fmt.Fprintf(out, "%s: invalid address\n", a)
			continue
		}
		logger.Debug("looking up", zap.String("addr", a))
		n, ok := db.Lookup(ip)
		if !ok {
			fmt.Fprintf(out, "%s: unknown\n", a)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", a, n.String(locdb.ReadOptions{}))
	}
	return nil
}
