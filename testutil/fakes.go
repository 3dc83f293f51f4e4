package testutil

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FakeBankQuerier serves balances from a map keyed by "address/denom". A
// missing entry reproduces the no-balance-at-all case.
type FakeBankQuerier struct {
	Balances map[string]sdk.Coin
	Err      error
}

func NewFakeBankQuerier() *FakeBankQuerier {
	return &FakeBankQuerier{Balances: make(map[string]sdk.Coin)}
}

func (f *FakeBankQuerier) SetBalance(address string, coin sdk.Coin) *FakeBankQuerier {
	f.Balances[address+"/"+coin.Denom] = coin
	return f
}

func (f *FakeBankQuerier) GetBalance(_ context.Context, address, denom string) (*sdk.Coin, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	coin, ok := f.Balances[address+"/"+denom]
	if !ok {
		return nil, nil
	}
	return &coin, nil
}

// FakeAttributeQuerier serves attribute names in pages. Page keys are plain
// page indexes; NeverTerminate makes every response advertise another page
// to exercise the pagination bound.
type FakeAttributeQuerier struct {
	Pages          map[string][][]string
	Err            error
	NeverTerminate bool
	Calls          int
}

func NewFakeAttributeQuerier() *FakeAttributeQuerier {
	return &FakeAttributeQuerier{Pages: make(map[string][][]string)}
}

func (f *FakeAttributeQuerier) SetAttributes(address string, pages ...[]string) *FakeAttributeQuerier {
	f.Pages[address] = pages
	return f
}

func (f *FakeAttributeQuerier) GetAttributesPage(_ context.Context, address, pageKey string) ([]string, string, error) {
	f.Calls++
	if f.Err != nil {
		return nil, "", f.Err
	}
	if f.NeverTerminate {
		return []string{"unrelated.attribute.pb"}, "again", nil
	}
	pages := f.Pages[address]
	index := 0
	if pageKey != "" {
		index, _ = strconv.Atoi(pageKey)
	}
	if index >= len(pages) {
		return nil, "", nil
	}
	nextKey := ""
	if index+1 < len(pages) {
		nextKey = strconv.Itoa(index + 1)
	}
	return pages[index], nextKey, nil
}

// FakeMarkerQuerier resolves marker administrative addresses from a map. A
// missing denom yields an empty address, the unknown-marker case.
type FakeMarkerQuerier struct {
	Addresses map[string]string
	Err       error
}

func NewFakeMarkerQuerier() *FakeMarkerQuerier {
	return &FakeMarkerQuerier{Addresses: make(map[string]string)}
}

func (f *FakeMarkerQuerier) SetMarkerAddress(denom, address string) *FakeMarkerQuerier {
	f.Addresses[denom] = address
	return f
}

func (f *FakeMarkerQuerier) GetMarkerAdminAddress(_ context.Context, denom string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Addresses[denom], nil
}
