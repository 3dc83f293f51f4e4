package provenance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// attributePageLimit is the page size requested from the attribute module.
const attributePageLimit = 25

type getAttributesResponse struct {
	Attributes []struct {
		Name string `json:"name"`
	} `json:"attributes"`
	Pagination struct {
		NextKey string `json:"next_key"`
	} `json:"pagination"`
}

// GetAttributesPage makes a request to the attribute module for one page of
// an account's attribute names. The returned nextKey is empty once the final
// page has been served.
func (c *Client) GetAttributesPage(ctx context.Context, address, pageKey string) ([]string, string, error) {
	requestEndpoint := fmt.Sprintf(apiEndpoints["attributes_endpoint"], address)
	u := fmt.Sprintf("%s%s?pagination.limit=%d", c.host, requestEndpoint, attributePageLimit)
	if pageKey != "" {
		u = fmt.Sprintf("%v&pagination.key=%v", u, url.QueryEscape(pageKey))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}

	defer resp.Body.Close()

	err = checkResponseErrorCode(requestEndpoint, resp)
	if err != nil {
		return nil, "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	var result getAttributesResponse
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, "", err
	}

	names := make([]string, 0, len(result.Attributes))
	for _, attribute := range result.Attributes {
		names = append(names, attribute.Name)
	}

	return names, result.Pagination.NextKey, nil
}
