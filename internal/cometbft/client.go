// Package cometbft is a minimal JSON-RPC client for the consensus node,
// shaped like klaytn's networks/rpc client surface (CallContext(ctx,
// result, method, args...)) but scaled down to the single call this
// service needs at startup: resolving the chain's native-token address.
package cometbft

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
)

var logger = log.NewModuleLogger(log.ModuleCometBFT)

// Client talks JSON-RPC 2.0 to a single CometBFT RPC endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client bound to the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type abciQueryParams struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

type abciQueryResult struct {
	Response struct {
		Value string `json:"value"`
		Code  int    `json:"code"`
	} `json:"response"`
}

// callContext issues a single JSON-RPC call, mirroring the
// CallContext(ctx, result, method, args...) shape of klaytn's rpc.Client.
func (c *Client) callContext(ctx context.Context, method string, params interface{}, result interface{}) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return corerr.Wrap(corerr.ClassConfiguration, err, "marshal rpc request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "build rpc request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "rpc call")
	}
	defer resp.Body.Close()

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "decode rpc response")
	}
	if rpcResp.Error != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, errors.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message), "rpc call")
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "decode rpc result")
	}
	return nil
}

// NativeTokenAddress resolves NAAN, the chain's native token address, via
// an abci_query on the /shell/native_token path. Retries indefinitely
// every 30s until the query succeeds, matching the original's startup
// behavior (spec.md §6).
func (c *Client) NativeTokenAddress(ctx context.Context) (string, error) {
	const retryInterval = 30 * time.Second
	for {
		addr, err := c.queryNativeToken(ctx)
		if err == nil {
			return addr, nil
		}
		logger.Warn("native token query failed, retrying", "err", err, "retry_in", retryInterval)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

func (c *Client) queryNativeToken(ctx context.Context) (string, error) {
	var result abciQueryResult
	params := abciQueryParams{Path: "/shell/native_token"}
	if err := c.callContext(ctx, "abci_query", params, &result); err != nil {
		return "", err
	}
	if result.Response.Code != 0 {
		return "", fmt.Errorf("abci_query returned code %d", result.Response.Code)
	}
	decoded, err := base64.StdEncoding.DecodeString(result.Response.Value)
	if err != nil {
		return "", corerr.Wrap(corerr.ClassTransientInfra, err, "decode native token response")
	}
	return string(decoded), nil
}
