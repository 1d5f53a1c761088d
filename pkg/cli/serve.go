package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hadari24/blackjack-network/pkg/httpapi"
	"github.com/hadari24/blackjack-network/pkg/server"
	"github.com/hadari24/blackjack-network/pkg/stats"
)

var (
	serveName      string
	serveTCPPort   int
	serveOffer     int
	serveInterval  time.Duration
	serveBroadcast string
	serveAPIAddr   string
)

// serveCmd runs a dealer until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a dealer that broadcasts offers and plays all comers",
	Long: `Serve opens a table: it broadcasts game offers over UDP, accepts one
player at a time over TCP, and deals matches until interrupted. Unless
disabled, a stats API serves the dealer's numbers on --api-addr for the
stats command and the dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flags override the config file.
		if serveName != "" {
			cfg.DealerName = serveName
		}
		if cmd.Flags().Changed("tcp-port") {
			cfg.TCPPort = serveTCPPort
		}
		if cmd.Flags().Changed("offer-port") {
			cfg.OfferPort = serveOffer
		}
		if cmd.Flags().Changed("broadcast") {
			cfg.BroadcastAddr = serveBroadcast
		}
		if cmd.Flags().Changed("api-addr") {
			cfg.APIAddr = serveAPIAddr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		interval, err := cfg.Interval()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("interval") {
			interval = serveInterval
		}

		reg := stats.NewRegistry(cfg.DealerName)
		opts := []server.Option{
			server.WithDealerName(cfg.DealerName),
			server.WithTCPPort(cfg.TCPPort),
			server.WithOfferPort(cfg.OfferPort),
			server.WithOfferInterval(interval),
			server.WithStats(reg),
		}
		if ip := cfg.Broadcast(); ip != nil {
			opts = append(opts, server.WithBroadcastAddr(ip))
		}
		srv := server.New(opts...)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var api *httpapi.Server
		if cfg.APIAddr != "" {
			api = httpapi.NewServer(reg, httpapi.DefaultOptions())
			go func() {
				if err := api.ListenAndServe(cfg.APIAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("serve: stats api: %v", err)
				}
			}()
		}

		// Graceful shutdown
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-sigCh:
				log.Println("shutdown signal received")
			case <-ctx.Done():
			}
			cancel()
			if api != nil {
				shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutCancel()
				if err := api.GracefulShutdown(shutCtx); err != nil {
					log.Printf("serve: stats api shutdown: %v", err)
				}
			}
		}()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveName, "name", "", fmt.Sprintf("dealer name shown in offers (default %q)", server.DefaultDealerName))
	serveCmd.Flags().IntVar(&serveTCPPort, "tcp-port", server.DefaultTCPPort, "TCP port for matches, 0 picks a free one")
	serveCmd.Flags().IntVar(&serveOffer, "offer-port", server.DefaultOfferPort, "UDP port offers broadcast to")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", server.DefaultOfferInterval, "pause between offer broadcasts")
	serveCmd.Flags().StringVar(&serveBroadcast, "broadcast", "", "broadcast address for offers (default 255.255.255.255)")
	serveCmd.Flags().StringVar(&serveAPIAddr, "api-addr", ":8080", "stats API listen address, empty disables it")
	rootCmd.AddCommand(serveCmd)
}
