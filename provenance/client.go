// Package provenance queries the chain's LCD REST API for the account facts
// the bridge gates on: bank balances, account attributes, and marker
// accounts.
package provenance

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

var apiEndpoints = map[string]string{
	"balance_by_denom_endpoint": "/cosmos/bank/v1beta1/balances/%s/by_denom?denom=%s",
	"attributes_endpoint":       "/provenance/attribute/v1/attributes/%s",
	"marker_endpoint":           "/provenance/marker/v1/marker/%s",
}

func GetEndpoint(key string) string {
	return apiEndpoints[key]
}

const defaultRequestTimeout = 30 * time.Second

// Client talks to one LCD host. It satisfies the bridge's BalanceQuerier,
// AttributeQuerier, and MarkerQuerier interfaces.
type Client struct {
	host       string
	httpClient *http.Client
}

func NewClient(host string) *Client {
	return &Client{
		host:       host,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

func checkResponseErrorCode(requestEndpoint string, resp *http.Response) error {
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("error getting response for endpoint %s: Status %s Body %s", requestEndpoint, resp.Status, body)
	}

	return nil
}
