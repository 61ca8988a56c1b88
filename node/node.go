// Package node wires the ledger engine, peer registry, consensus resolver
// and HTTP surface into one runnable unit.
package node

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"chainforge/api"
	"chainforge/blockchain"
	"chainforge/consensus"
	"chainforge/peers"
)

// Config holds everything needed to run a node.
type Config struct {
	Port            uint16
	Difficulty      uint
	SeedPeers       []string
	ResolveInterval time.Duration // zero disables periodic resolution
	FetchTimeout    time.Duration
}

// Node is one independent replica of the ledger.
type Node struct {
	log      zerolog.Logger
	cfg      Config
	identity string

	ledger   *blockchain.Ledger
	registry *peers.Registry
	resolver *consensus.Resolver
	server   *echo.Echo

	stop chan struct{}
}

// New creates a node with a fresh genesis-only ledger and a process-unique
// identity that receives its mining rewards.
func New(log zerolog.Logger, cfg Config) (*Node, error) {

	identity := strings.ReplaceAll(uuid.NewString(), "-", "")
	log = log.With().Str("node", identity[:8]).Logger()

	ledger := blockchain.NewLedger(cfg.Difficulty)
	registry := peers.NewRegistry()
	for _, peer := range cfg.SeedPeers {
		err := registry.Register(peer)
		if err != nil {
			return nil, fmt.Errorf("could not register seed peer %s: %w", peer, err)
		}
	}

	fetcher := api.NewClient(cfg.FetchTimeout)
	resolver := consensus.NewResolver(log, ledger, registry, fetcher)
	ctrl := api.NewController(log, ledger, registry, resolver, identity)
	server := api.NewServer(log, ctrl)

	n := &Node{
		log:      log,
		cfg:      cfg,
		identity: identity,
		ledger:   ledger,
		registry: registry,
		resolver: resolver,
		server:   server,
		stop:     make(chan struct{}),
	}

	return n, nil
}

// Identity returns the node's mining-reward identity.
func (n *Node) Identity() string {
	return n.identity
}

// Ledger returns the node's ledger.
func (n *Node) Ledger() *blockchain.Ledger {
	return n.ledger
}

// Run starts the HTTP server and, when configured, the periodic consensus
// loop. It blocks until the server exits.
func (n *Node) Run() error {

	if n.cfg.ResolveInterval > 0 {
		go n.resolveLoop()
	}

	n.log.Info().Uint16("port", n.cfg.Port).Int("seed_peers", n.registry.Count()).Msg("node starting")

	err := n.server.Start(fmt.Sprint(":", n.cfg.Port))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not serve API: %w", err)
	}

	return nil
}

// Stop shuts the node down, waiting up to the given context's deadline for
// in-flight requests to drain.
func (n *Node) Stop(ctx context.Context) error {
	close(n.stop)
	return n.server.Shutdown(ctx)
}

func (n *Node) resolveLoop() {
	ticker := time.NewTicker(n.cfg.ResolveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stop:
			return
		case <-ticker.C:
			outcome := n.resolver.Resolve(context.Background())
			n.log.Debug().Bool("replaced", outcome.Replaced).Int("length", len(outcome.Chain)).Msg("periodic resolution done")
		}
	}
}
