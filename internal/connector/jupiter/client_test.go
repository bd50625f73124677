package jupiter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v6/quote" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("inputMint") != "AAA" {
			t.Fatalf("missing inputMint query")
		}
		if r.URL.Query().Get("amount") != "100000000" {
			t.Fatalf("unexpected amount %s", r.URL.Query().Get("amount"))
		}
		if r.URL.Query().Get("slippageBps") != "50" {
			t.Fatalf("unexpected slippageBps %s", r.URL.Query().Get("slippageBps"))
		}
		resp := QuoteResponse{InputMint: "AAA", OutputMint: "BBB", InAmount: "100000000", OutAmount: "20", SlippageBps: 50}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	quote, err := client.GetQuote(context.Background(), QuoteParams{
		InputMint:   "AAA",
		OutputMint:  "BBB",
		Amount:      "100000000",
		SlippageBps: 50,
	})
	if err != nil {
		t.Fatalf("GetQuote returned error: %v", err)
	}
	if quote.OutAmount != "20" {
		t.Fatalf("expected OutAmount 20, got %s", quote.OutAmount)
	}
}

func TestGetQuoteNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no route found", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.GetQuote(context.Background(), QuoteParams{InputMint: "AAA", OutputMint: "BBB", Amount: "1", SlippageBps: 50})
	if err == nil {
		t.Fatalf("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "no route found") {
		t.Fatalf("expected upstream body in error, got %v", err)
	}
}

func TestBuildSwap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v6/swap" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		var body SwapRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.UserPublicKey != "WALLET" {
			t.Fatalf("unexpected userPublicKey %s", body.UserPublicKey)
		}
		if !body.WrapAndUnwrapSol {
			t.Fatalf("expected wrapAndUnwrapSol true")
		}
		_ = json.NewEncoder(w).Encode(SwapResponse{SwapTransaction: "dGVzdA=="})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	resp, err := client.BuildSwap(context.Background(), &SwapRequest{
		QuoteResponse:    &QuoteResponse{InAmount: "1", OutAmount: "2"},
		UserPublicKey:    "WALLET",
		WrapAndUnwrapSol: true,
	})
	if err != nil {
		t.Fatalf("BuildSwap returned error: %v", err)
	}
	if resp.SwapTransaction != "dGVzdA==" {
		t.Fatalf("unexpected swap transaction: %s", resp.SwapTransaction)
	}
}
