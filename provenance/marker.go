package provenance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type getMarkerResponse struct {
	Marker struct {
		BaseAccount struct {
			Address string `json:"address"`
		} `json:"base_account"`
	} `json:"marker"`
}

// GetMarkerAdminAddress makes a request to the marker module and returns the
// marker's own account address, where escrowed supply is held. An unknown
// marker yields an empty address with no error.
func (c *Client) GetMarkerAdminAddress(ctx context.Context, denom string) (string, error) {
	requestEndpoint := fmt.Sprintf(apiEndpoints["marker_endpoint"], denom)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.host, requestEndpoint), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	err = checkResponseErrorCode(requestEndpoint, resp)
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result getMarkerResponse
	err = json.Unmarshal(body, &result)
	if err != nil {
		return "", err
	}

	return result.Marker.BaseAccount.Address, nil
}
