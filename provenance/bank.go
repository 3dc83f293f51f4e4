package provenance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type getBalanceByDenomResponse struct {
	Balance *struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	} `json:"balance"`
}

// GetBalance makes a request to the bank module for one account's balance of
// one denom. A nil coin means the account has no balance entry for the denom.
func (c *Client) GetBalance(ctx context.Context, address, denom string) (*sdk.Coin, error) {
	requestEndpoint := fmt.Sprintf(apiEndpoints["balance_by_denom_endpoint"], address, url.QueryEscape(denom))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.host, requestEndpoint), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	err = checkResponseErrorCode(requestEndpoint, resp)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result getBalanceByDenomResponse
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	if result.Balance == nil {
		return nil, nil
	}

	amount, ok := math.NewIntFromString(result.Balance.Amount)
	if !ok {
		return nil, fmt.Errorf("unable to parse balance amount [%s] for denom [%s]", result.Balance.Amount, denom)
	}

	return &sdk.Coin{Denom: result.Balance.Denom, Amount: amount}, nil
}
