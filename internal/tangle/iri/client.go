// Package iri is a client for the JSON command API of IRI-compatible tangle nodes.
package iri

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
)

const (
	apiVersionHeader = "X-IOTA-API-Version"
	apiVersion       = "1"

	commandFindTransactions   = "findTransactions"
	commandGetTrytes          = "getTrytes"
	commandGetNodeInfo        = "getNodeInfo"
	commandGetInclusionStates = "getInclusionStates"

	maxErrorBody = 4 << 10
)

// ErrNodeResponse wraps errors reported by the node in its response body.
var ErrNodeResponse = errors.New("node error")

// FindTransactionsQuery selects transactions by any of the listed fields. Empty fields are omitted.
type FindTransactionsQuery struct {
	Addresses []string `json:"addresses,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Bundles   []string `json:"bundles,omitempty"`
	Approvees []string `json:"approvees,omitempty"`
}

// NodeInfo is the subset of getNodeInfo used for confirmation lookups.
type NodeInfo struct {
	AppName                            string `json:"appName"`
	AppVersion                         string `json:"appVersion"`
	LatestMilestone                    string `json:"latestMilestone"`
	LatestMilestoneIndex               uint64 `json:"latestMilestoneIndex"`
	LatestSolidSubtangleMilestone      string `json:"latestSolidSubtangleMilestone"`
	LatestSolidSubtangleMilestoneIndex uint64 `json:"latestSolidSubtangleMilestoneIndex"`
}

// Client calls a single node over HTTP.
type Client struct {
	url     string
	client  *http.Client
	metrics Metrics
}

// NewClient creates a client that POSTs commands to url.
func NewClient(url string, client *http.Client, metrics Metrics) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		url:     url,
		client:  client,
		metrics: metrics,
	}
}

// FindTransactions returns the hashes of transactions matching q.
func (c *Client) FindTransactions(ctx context.Context, q FindTransactionsQuery) (hashes []string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(commandFindTransactions, err, started)
	}()

	req := struct {
		Command string `json:"command"`
		FindTransactionsQuery
	}{Command: commandFindTransactions, FindTransactionsQuery: q}

	var resp struct {
		Hashes []string `json:"hashes"`
	}
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Hashes, nil
}

// GetTrytes returns the raw trytes of each hash, in request order. Unknown hashes yield all-9 trytes.
func (c *Client) GetTrytes(ctx context.Context, hashes []string) (trytes []trinary.Trytes, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(commandGetTrytes, err, started)
	}()

	req := struct {
		Command string   `json:"command"`
		Hashes  []string `json:"hashes"`
	}{Command: commandGetTrytes, Hashes: hashes}

	var resp struct {
		Trytes []trinary.Trytes `json:"trytes"`
	}
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Trytes) != len(hashes) {
		return nil, fmt.Errorf("%w: getTrytes returned %d entries for %d hashes", ErrNodeResponse, len(resp.Trytes), len(hashes))
	}
	return resp.Trytes, nil
}

// GetNodeInfo returns the node's milestone state.
func (c *Client) GetNodeInfo(ctx context.Context) (info NodeInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(commandGetNodeInfo, err, started)
	}()

	req := struct {
		Command string `json:"command"`
	}{Command: commandGetNodeInfo}

	if err := c.do(ctx, req, &info); err != nil {
		return NodeInfo{}, err
	}
	return info, nil
}

// GetInclusionStates reports, per hash, whether it is referenced by any of tips.
func (c *Client) GetInclusionStates(ctx context.Context, hashes, tips []string) (states []bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(commandGetInclusionStates, err, started)
	}()

	req := struct {
		Command      string   `json:"command"`
		Transactions []string `json:"transactions"`
		Tips         []string `json:"tips"`
	}{Command: commandGetInclusionStates, Transactions: hashes, Tips: tips}

	var resp struct {
		States []bool `json:"states"`
	}
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.States) != len(hashes) {
		return nil, fmt.Errorf("%w: getInclusionStates returned %d states for %d hashes", ErrNodeResponse, len(resp.States), len(hashes))
	}
	return resp.States, nil
}

func (c *Client) do(ctx context.Context, command, out any) error {
	body, err := json.Marshal(command)
	if err != nil {
		return fmt.Errorf("encode command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build node request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiVersionHeader, apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("node request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var nodeErr struct {
			Error     string `json:"error"`
			Exception string `json:"exception"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(raw, &nodeErr) == nil && (nodeErr.Error != "" || nodeErr.Exception != "") {
			msg := nodeErr.Error
			if msg == "" {
				msg = nodeErr.Exception
			}
			return fmt.Errorf("%w: %s: %s", ErrNodeResponse, resp.Status, msg)
		}
		return fmt.Errorf("%w: node returned %s", ErrNodeResponse, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode node response: %w", err)
	}
	return nil
}
