// Package peers tracks the set of nodes this node reconciles its chain
// against. Peers are supplied out-of-band; there is no discovery, no
// liveness checking and no removal.
package peers

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// ErrInvalidAddress is returned when an address cannot be reduced to a
// host:port pair.
var ErrInvalidAddress = errors.New("invalid peer address")

// Registry is a concurrency-safe set of normalized peer addresses.
type Registry struct {
	mu    sync.RWMutex
	peers map[string]struct{}
}

// NewRegistry creates an empty peer registry.
func NewRegistry() *Registry {
	return &Registry{
		peers: make(map[string]struct{}),
	}
}

// Register normalizes address to host:port form and adds it to the set.
// Registering an already-known peer is a no-op. Accepted spellings are
// bare "host:port" and full URLs such as "http://host:port/anything".
func (r *Registry) Register(address string) error {
	normalized, err := Normalize(address)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.peers[normalized] = struct{}{}
	return nil
}

// Addresses returns the registered peers in lexicographic order. The
// fixed order gives consensus resolution a defined iteration order.
func (r *Registry) Addresses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addresses := make([]string, 0, len(r.peers))
	for peer := range r.peers {
		addresses = append(addresses, peer)
	}
	sort.Strings(addresses)
	return addresses
}

// Count returns the number of registered peers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.peers)
}

// Normalize reduces a peer address to canonical host:port form.
func Normalize(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "", ErrInvalidAddress
	}

	// url.Parse treats "host:port" as scheme "host"; force a scheme so
	// the host part parses consistently for both spellings.
	if !strings.Contains(trimmed, "//") {
		trimmed = "http://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}

	return parsed.Host, nil
}
