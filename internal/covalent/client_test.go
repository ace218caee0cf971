package covalent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFetchBalancesSuccess(t *testing.T) {
	var gotPath, gotQuery, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {"items": [
				{"contract_ticker_symbol": "USDC", "contract_name": "USD Coin", "quote": 100.5},
				{"contract_ticker_symbol": "ETH", "contract_name": "Ether", "quote": 200}
			]},
			"error": false
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	items, err := client.FetchBalances(context.Background(), "eth-mainnet", "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/eth-mainnet/address/0xabc/balances_v2/" {
		t.Errorf("path = %q, want /v1/eth-mainnet/address/0xabc/balances_v2/", gotPath)
	}
	for _, param := range []string{"quote-currency=usd", "no-nft=true", "no-spam=true"} {
		if !strings.Contains(gotQuery, param) {
			t.Errorf("query %q missing %q", gotQuery, param)
		}
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}

	if len(items) != 2 {
		t.Fatalf("items count = %d, want 2", len(items))
	}
	if items[0].Symbol != "USDC" || items[0].Name != "USD Coin" {
		t.Errorf("items[0] = %q/%q, want USDC/USD Coin", items[0].Symbol, items[0].Name)
	}
	value, ok := items[0].Quote.Value()
	if !ok {
		t.Fatal("items[0] quote invalid, want valid")
	}
	if !value.Equal(decimal.RequireFromString("100.5")) {
		t.Errorf("items[0] quote = %s, want 100.5", value)
	}
}

func TestFetchBalancesEmptyItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"items": []}, "error": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	items, err := client.FetchBalances(context.Background(), "base-mainnet", "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items count = %d, want 0", len(items))
	}
}

func TestFetchBalancesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	if _, err := client.FetchBalances(context.Background(), "eth-mainnet", "0xabc"); err == nil {
		t.Fatal("expected error for HTTP 500, got nil")
	}
}

func TestFetchBalancesEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": null, "error": true, "error_message": "invalid chain"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	_, err := client.FetchBalances(context.Background(), "nope-mainnet", "0xabc")
	if err == nil {
		t.Fatal("expected error for envelope error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid chain") {
		t.Errorf("error = %v, want upstream message included", err)
	}
}

func TestFetchBalancesMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	if _, err := client.FetchBalances(context.Background(), "eth-mainnet", "0xabc"); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestFetchBalancesContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "k", 5*time.Second)
	if _, err := client.FetchBalances(ctx, "eth-mainnet", "0xabc"); err == nil {
		t.Fatal("expected error on cancelled context, got nil")
	}
}
