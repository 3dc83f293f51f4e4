package provenance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	"github.com/provlabs/funding-trading-bridge/provenance"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cosmos/bank/v1beta1/balances/sender/by_denom", r.URL.Path)
		require.Equal(t, "depositcoin", r.URL.Query().Get("denom"))
		w.Write([]byte(`{"balance":{"denom":"depositcoin","amount":"103"}}`))
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)
	coin, err := client.GetBalance(context.Background(), "sender", "depositcoin")
	require.NoError(t, err)
	require.NotNil(t, coin)
	require.Equal(t, "depositcoin", coin.Denom)
	require.Equal(t, math.NewInt(103), coin.Amount)
}

func TestGetBalanceMissingEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"balance":null}`))
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)
	coin, err := client.GetBalance(context.Background(), "sender", "depositcoin")
	require.NoError(t, err)
	require.Nil(t, coin)
}

func TestGetBalanceUnparseableAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"balance":{"denom":"depositcoin","amount":"lots"}}`))
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)
	_, err := client.GetBalance(context.Background(), "sender", "depositcoin")
	require.ErrorContains(t, err, "unable to parse balance amount [lots]")
}

func TestGetBalanceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "address decode failure", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)
	_, err := client.GetBalance(context.Background(), "sender", "depositcoin")
	require.ErrorContains(t, err, "error getting response for endpoint")
	require.ErrorContains(t, err, "address decode failure")
}

func TestGetAttributesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/provenance/attribute/v1/attributes/sender", r.URL.Path)
		require.Equal(t, "25", r.URL.Query().Get("pagination.limit"))

		if r.URL.Query().Get("pagination.key") == "" {
			w.Write([]byte(`{"attributes":[{"name":"deposit.kyc.pb"},{"name":"other.pb"}],"pagination":{"next_key":"cGFnZTI="}}`))
			return
		}
		require.Equal(t, "cGFnZTI=", r.URL.Query().Get("pagination.key"))
		w.Write([]byte(`{"attributes":[{"name":"withdraw.kyc.pb"}],"pagination":{"next_key":null}}`))
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)

	names, nextKey, err := client.GetAttributesPage(context.Background(), "sender", "")
	require.NoError(t, err)
	require.Equal(t, []string{"deposit.kyc.pb", "other.pb"}, names)
	require.Equal(t, "cGFnZTI=", nextKey)

	names, nextKey, err = client.GetAttributesPage(context.Background(), "sender", nextKey)
	require.NoError(t, err)
	require.Equal(t, []string{"withdraw.kyc.pb"}, names)
	require.Empty(t, nextKey)
}

func TestGetMarkerAdminAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/provenance/marker/v1/marker/tradingcoin", r.URL.Path)
		w.Write([]byte(`{"marker":{"base_account":{"address":"cosmos130mdu9a0etmeuw52qfxk73pn0ga6gawkryh2z6"}}}`))
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)
	address, err := client.GetMarkerAdminAddress(context.Background(), "tradingcoin")
	require.NoError(t, err)
	require.Equal(t, "cosmos130mdu9a0etmeuw52qfxk73pn0ga6gawkryh2z6", address)
}

func TestGetMarkerAdminAddressUnknownMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "marker not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)
	address, err := client.GetMarkerAdminAddress(context.Background(), "tradingcoin")
	require.NoError(t, err)
	require.Empty(t, address)
}

func TestGetMarkerAdminAddressErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := provenance.NewClient(server.URL)
	_, err := client.GetMarkerAdminAddress(context.Background(), "tradingcoin")
	require.ErrorContains(t, err, "error getting response for endpoint")
}
