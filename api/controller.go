// Package api exposes the ledger's operations over HTTP. It is a thin
// layer: handlers decode and validate payloads, invoke the engine and
// serialize its results, nothing more.
package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"chainforge/blockchain"
	"chainforge/consensus"
	"chainforge/peers"
)

// TransactionRequest is the payload of POST /transactions/new. Amount is
// a pointer so that a missing field is distinguishable from a zero value
// and rejected rather than coerced.
type TransactionRequest struct {
	Sender    string   `json:"sender" validate:"required"`
	Recipient string   `json:"recipient" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required"`
}

// RegisterRequest is the payload of POST /nodes/register.
type RegisterRequest struct {
	Nodes []string `json:"nodes" validate:"required,min=1"`
}

// ChainResponse is the body of GET /chain and what peers exchange during
// consensus resolution.
type ChainResponse struct {
	Chain  []blockchain.Block `json:"chain"`
	Length int                `json:"length"`
}

// Controller implements the HTTP handlers of a node.
type Controller struct {
	log      zerolog.Logger
	ledger   *blockchain.Ledger
	registry *peers.Registry
	resolver *consensus.Resolver
	nodeID   string
	validate *validator.Validate
}

// NewController creates a controller over the given engine components.
// The nodeID is the stable per-process identity credited with mining
// rewards.
func NewController(log zerolog.Logger, ledger *blockchain.Ledger, registry *peers.Registry, resolver *consensus.Resolver, nodeID string) *Controller {
	return &Controller{
		log:      log.With().Str("component", "api").Logger(),
		ledger:   ledger,
		registry: registry,
		resolver: resolver,
		nodeID:   nodeID,
		validate: validator.New(),
	}
}

// NewTransaction handles POST /transactions/new.
func (c *Controller) NewTransaction(ctx echo.Context) error {

	var req TransactionRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	err = c.validate.Struct(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	index := c.ledger.NewTransaction(req.Sender, req.Recipient, *req.Amount)

	c.log.Debug().Uint64("block_index", index).Msg("transaction queued")

	res := map[string]interface{}{
		"message": "transaction queued",
		"index":   index,
	}

	return ctx.JSON(http.StatusCreated, res)
}

// Mine handles GET /mine: it solves the proof-of-work puzzle for the
// current tip, credits the reward to this node and seals a block.
func (c *Controller) Mine(ctx echo.Context) error {

	block, err := blockchain.Mine(ctx.Request().Context(), c.ledger, c.nodeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	c.log.Info().Uint64("index", block.Index).Int64("proof", block.Proof).Msg("block sealed")

	res := map[string]interface{}{
		"message":       "new block sealed",
		"index":         block.Index,
		"transactions":  block.Transactions,
		"proof":         block.Proof,
		"previous_hash": block.PreviousHash,
	}

	return ctx.JSON(http.StatusOK, res)
}

// Chain handles GET /chain.
func (c *Controller) Chain(ctx echo.Context) error {

	chain := c.ledger.Chain()
	res := ChainResponse{
		Chain:  chain,
		Length: len(chain),
	}

	return ctx.JSON(http.StatusOK, res)
}

// RegisterNodes handles POST /nodes/register.
func (c *Controller) RegisterNodes(ctx echo.Context) error {

	var req RegisterRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	err = c.validate.Struct(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	for _, node := range req.Nodes {
		err = c.registry.Register(node)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}
	}

	res := map[string]interface{}{
		"message":     "peers registered",
		"total_nodes": c.registry.Addresses(),
	}

	return ctx.JSON(http.StatusCreated, res)
}

// Nodes handles GET /nodes.
func (c *Controller) Nodes(ctx echo.Context) error {

	res := map[string]interface{}{
		"nodes": c.registry.Addresses(),
	}

	return ctx.JSON(http.StatusOK, res)
}

// ResolveConflicts handles GET /nodes/resolve.
func (c *Controller) ResolveConflicts(ctx echo.Context) error {

	outcome := c.resolver.Resolve(ctx.Request().Context())

	res := map[string]interface{}{
		"chain": outcome.Chain,
	}
	if outcome.Replaced {
		res["message"] = "chain replaced"
	} else {
		res["message"] = "chain unchanged"
	}

	return ctx.JSON(http.StatusOK, res)
}
