/*
Copyright 2024.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/frantjc/pubip/internal/bind"
	"github.com/frantjc/pubip/internal/extip"
	"github.com/frantjc/pubip/internal/extip/extiptrace"
	"github.com/frantjc/pubip/internal/logutil"
	xos "github.com/frantjc/x/os"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := NewEntrypoint().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}

	stop()
	xos.ExitFromError(err)
}

// NewExternalIPAddressGetterFunc returns the getter a command
// uses for the given bind mode and timeout.
type NewExternalIPAddressGetterFunc func(bind.Mode, time.Duration) extip.ExternalIPAddressGetter

// NewTraceExternalIPAddressGetter returns a getter that asks Cloudflare's
// trace endpoint over a connection forced to the given mode's family.
func NewTraceExternalIPAddressGetter(mode bind.Mode, timeout time.Duration) extip.ExternalIPAddressGetter {
	return &extiptrace.ExternalIPAddressGetter{
		Client:  bind.NewHTTPClient(mode),
		URL:     extiptrace.CloudflareTraceURL,
		Timeout: timeout,
	}
}

// NewEntrypoint returns the command which acts as
// the entrypoint for `pubip`.
func NewEntrypoint() *cobra.Command {
	return newEntrypoint(NewTraceExternalIPAddressGetter)
}

func newEntrypoint(newGetter NewExternalIPAddressGetterFunc) *cobra.Command {
	var (
		timeoutSeconds int
		slogConfig     = new(logutil.SlogConfig)
		runE           = func(mode bind.Mode) func(*cobra.Command, []string) error {
			return func(cmd *cobra.Command, _ []string) error {
				var (
					ctx     = cmd.Context()
					timeout = TimeoutFromSeconds(timeoutSeconds)
				)

				logutil.SloggerFrom(ctx).Debug("getting external IP address", "mode", mode.String(), "timeout", timeout)

				addr, err := newGetter(mode, timeout).GetExternalIPAddress(ctx)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), addr.String())
				return err
			}
		}
		cmd = &cobra.Command{
			Use:           "pubip",
			Short:         "Prints public IP address",
			Version:       SemVer(),
			Args:          cobra.NoArgs,
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRun: func(cmd *cobra.Command, _ []string) {
				log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slogConfig,
				}))

				cmd.SetContext(logutil.SloggerInto(cmd.Context(), log))
			},
			RunE: runE(bind.ModeDefault),
		}
	)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "v4",
			Short: "Prints public IPv4 address",
			Args:  cobra.NoArgs,
			RunE:  runE(bind.ModeIPv4),
		},
		&cobra.Command{
			Use:   "v6",
			Short: "Prints public IPv6 address",
			Args:  cobra.NoArgs,
			RunE:  runE(bind.ModeIPv6),
		},
	)

	cmd.Flags().BoolP("help", "h", false, "Help for "+cmd.Name())
	cmd.Flags().Bool("version", false, "Version for "+cmd.Name())
	cmd.SetVersionTemplate("{{ .Name }} {{ .Version }} " + runtime.Version() + "\n")

	slogConfig.AddFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().IntVarP(&timeoutSeconds, "timeout", "t", 1, "Request timeout in seconds")

	return cmd
}

// TimeoutFromSeconds converts seconds to a time.Duration,
// raising anything less than one second to one second.
func TimeoutFromSeconds[T constraints.Integer](seconds T) time.Duration {
	if seconds < 1 {
		return time.Second
	}

	return time.Duration(seconds) * time.Second
}
