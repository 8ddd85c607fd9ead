// Package netcache mirrors a completed build's graph summary into Redis so
// that a placer farm — other gp4par instances running headless, batch
// place-and-route jobs — can discover finished builds without re-parsing
// the netlist and device descriptor themselves.
package netcache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/gp4par/gp4par/pkg/util"
)

const keyPrefix = "gp4par:build:"

// Client wraps a Redis connection used to publish and fetch build summaries.
type Client struct {
	client *redis.Client
	ctx    context.Context
}

// NewClient creates a netcache client for the Redis instance at addr
// (e.g. "localhost:6379").
func NewClient(addr string) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ctx:    context.Background(),
	}
}

// Connect verifies the Redis connection is reachable.
func (c *Client) Connect() error {
	return c.client.Ping(c.ctx).Err()
}

// Close closes the underlying Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Summary is the post-build graph summary mirrored into the net-cache.
// It deliberately carries no placement detail — just enough for a farm
// scheduler to know a build exists, which part it targets, and its size.
type Summary struct {
	Part        string
	NetlistPath string
	OutputPath  string
	NodeCount   int
	EdgeCount   int
	PublishedBy string
}

// Publish writes summary to the net-cache under key. Publish always
// overwrites; callers that want write-once semantics should check Fetch
// first and gate the call through pkg/auth.
func (c *Client) Publish(key string, summary Summary) error {
	redisKey := keyPrefix + key
	fields := map[string]interface{}{
		"part":         summary.Part,
		"netlist_path": summary.NetlistPath,
		"output_path":  summary.OutputPath,
		"node_count":   summary.NodeCount,
		"edge_count":   summary.EdgeCount,
		"published_by": summary.PublishedBy,
	}
	if err := c.client.HSet(c.ctx, redisKey, fields).Err(); err != nil {
		return fmt.Errorf("netcache: publish %s: %w", key, err)
	}
	util.Infof("netcache: published build summary for %s (%d nodes, %d edges)", key, summary.NodeCount, summary.EdgeCount)
	return nil
}

// Fetch reads a previously published summary. Returns nil, nil if key is
// not present in the net-cache.
func (c *Client) Fetch(key string) (*Summary, error) {
	redisKey := keyPrefix + key
	vals, err := c.client.HGetAll(c.ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("netcache: fetch %s: %w", key, err)
	}
	if len(vals) == 0 {
		return nil, nil
	}

	nodeCount, _ := strconv.Atoi(vals["node_count"])
	edgeCount, _ := strconv.Atoi(vals["edge_count"])

	return &Summary{
		Part:        vals["part"],
		NetlistPath: vals["netlist_path"],
		OutputPath:  vals["output_path"],
		NodeCount:   nodeCount,
		EdgeCount:   edgeCount,
		PublishedBy: vals["published_by"],
	}, nil
}

// Keys lists all build summary keys currently in the net-cache, stripped
// of their prefix.
func (c *Client) Keys() ([]string, error) {
	raw, err := c.client.Keys(c.ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("netcache: list keys: %w", err)
	}
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k[len(keyPrefix):]
	}
	return keys, nil
}

// Delete removes a build summary from the net-cache.
func (c *Client) Delete(key string) error {
	if err := c.client.Del(c.ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("netcache: delete %s: %w", key, err)
	}
	return nil
}
