package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

// Client talks to the solver backend. The underlying http.Client carries no
// timeout: a hung request stalls only its own pipeline invocation, never the
// rest of the interface.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Graph fetches the full graph.
func (c *Client) Graph(ctx context.Context) (*graph.Graph, error) {
	var g graph.Graph
	if err := c.get(ctx, "/graph", nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Solve requests a computed route.
func (c *Client) Solve(ctx context.Context, req SolveRequest) (*graph.SolvedPath, error) {
	var p graph.SolvedPath
	if err := c.post(ctx, "/solve", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Compare requests a multi-algorithm comparison.
func (c *Client) Compare(ctx context.Context, req SolveRequest) (*CompareResponse, error) {
	var resp CompareResponse
	if err := c.post(ctx, "/solve/compare", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SolveHard requests a constraint-validated route.
func (c *Client) SolveHard(ctx context.Context, req HardSolveRequest) (*HardSolveResult, error) {
	var res HardSolveResult
	if err := c.post(ctx, "/solve/hard", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SetHazards toggles the hazard flag on the given nodes/edges and returns
// the complete updated graph for wholesale resynchronization.
func (c *Client) SetHazards(ctx context.Context, nodeIDs []graph.NodeID, edgeIDs []string, setTo bool) (*graph.Graph, error) {
	body := hazardRequest{NodeIDs: nodeIDs, EdgeIDs: edgeIDs, SetTo: setTo}
	if body.NodeIDs == nil {
		body.NodeIDs = []graph.NodeID{}
	}
	if body.EdgeIDs == nil {
		body.EdgeIDs = []string{}
	}
	var g graph.Graph
	if err := c.post(ctx, "/graph/hazards", body, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// SyncConstraints pushes the blocked sets to the server. Idempotent
// overwrite; the server acknowledges without returning a graph.
func (c *Client) SyncConstraints(ctx context.Context, blockedNodes []graph.NodeID, blockedEdges []string) error {
	body := constraintRequest{BlockedNodes: blockedNodes, BlockedEdges: blockedEdges}
	if body.BlockedNodes == nil {
		body.BlockedNodes = []graph.NodeID{}
	}
	if body.BlockedEdges == nil {
		body.BlockedEdges = []string{}
	}
	var ack struct {
		Status string `json:"status"`
	}
	return c.post(ctx, "/graph/constraints", body, &ack)
}

// PredictTraffic fetches the traffic prediction fragment.
func (c *Client) PredictTraffic(ctx context.Context, hazardIDs, blockedIDs []graph.NodeID) (*graph.TrafficPrediction, error) {
	q := url.Values{
		"hazard_nodes":  {joinIDs(hazardIDs)},
		"blocked_nodes": {joinIDs(blockedIDs)},
	}
	var t graph.TrafficPrediction
	if err := c.get(ctx, "/predict/traffic", q, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// PredictHazards fetches the hazard prediction fragment.
func (c *Client) PredictHazards(ctx context.Context, hazardIDs, blockedIDs []graph.NodeID) (*graph.HazardPredictions, error) {
	q := url.Values{
		"node_ids":      {joinIDs(hazardIDs)},
		"blocked_nodes": {joinIDs(blockedIDs)},
	}
	var h graph.HazardPredictions
	if err := c.get(ctx, "/predict/hazards", q, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// PredictRouteQuality fetches the route-quality fragment for the gate.
func (c *Client) PredictRouteQuality(ctx context.Context, start, end graph.NodeID, algorithm string, hazardIDs, blockedIDs []graph.NodeID) (*graph.RouteQuality, error) {
	q := url.Values{
		"start":         {strconv.Itoa(int(start))},
		"end":           {strconv.Itoa(int(end))},
		"algorithm":     {algorithm},
		"hazard_nodes":  {joinIDs(hazardIDs)},
		"blocked_nodes": {joinIDs(blockedIDs)},
	}
	var rq graph.RouteQuality
	if err := c.get(ctx, "/predict/route-quality", q, &rq); err != nil {
		return nil, err
	}
	return &rq, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return c.do(path, req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(path, req, out)
}

// do executes the request, rejects non-success statuses, checks the payload
// for an in-band error marker, and only then decodes into out.
func (c *Client) do(path string, req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Endpoint: path, Status: resp.StatusCode, Message: detailOf(data)}
	}

	var marker struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &marker); err == nil && marker.Error != "" {
		return &StatusError{Endpoint: path, Message: marker.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", path, err)
	}
	return nil
}

// detailOf extracts a human-readable detail from an error body, if any.
func detailOf(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Detail != "" {
		return body.Detail
	}
	return body.Error
}

func joinIDs(ids []graph.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}
