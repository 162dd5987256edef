package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
)

// TestResult contains metrics for a single purchase
type TestResult struct {
	AccountID    string
	Price        int64
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	Placed            int
	Rejected          int // insufficient balance
	Failed            int
	TotalTime         time.Duration
	ResponseTimes     []time.Duration
	ErrorCounts       map[string]int
	SpentByAccount    map[string]int64
	OrdersByAccount   map[string]int
	StartingBalances  map[string]int64
	FinalBalances     map[string]int64
	BalanceFetchError map[string]error
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of purchases to attempt")
	accountsStr := flag.String("accounts", "load-1,load-2", "Comma-separated registered account ids to buy from")
	itemsStr := flag.String("items", "mlbb-dia-86", "Comma-separated catalog item ids")
	playerID := flag.String("player", "12345678", "Player id sent with every purchase")
	serverID := flag.String("server", "1234", "Server id sent with every purchase")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", "", "JWT secret shared with the server")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	if *secret == "" {
		fmt.Println("-secret is required")
		return
	}

	accounts := splitList(*accountsStr)
	items := splitList(*itemsStr)
	auth := middleware.NewAuthenticator(*secret, "")

	tokens := make(map[string]string, len(accounts))
	for _, id := range accounts {
		token, err := auth.IssueToken(id, false, time.Hour)
		if err != nil {
			fmt.Printf("Failed to issue token for %s: %v\n", id, err)
			return
		}
		tokens[id] = token
	}

	client := &http.Client{Timeout: 10 * time.Second}

	stats := &TestStats{
		TotalRequests:     *totalRequests,
		ResponseTimes:     make([]time.Duration, 0, *totalRequests),
		ErrorCounts:       make(map[string]int),
		SpentByAccount:    make(map[string]int64),
		OrdersByAccount:   make(map[string]int),
		StartingBalances:  make(map[string]int64),
		FinalBalances:     make(map[string]int64),
		BalanceFetchError: make(map[string]error),
	}

	for _, id := range accounts {
		balance, err := fetchBalance(client, *baseURL, tokens[id])
		if err != nil {
			fmt.Printf("Failed to read starting balance of %s: %v\n", id, err)
			return
		}
		stats.StartingBalances[id] = balance
	}

	fmt.Printf("Purchasing across %d accounts: %v\n", len(accounts), accounts)
	fmt.Printf("Items: %v\n", items)
	fmt.Printf("Concurrency: %d goroutines, %d purchases\n", *concurrency, *totalRequests)

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				accountID := accounts[rand.Intn(len(accounts))]
				body := dto.PurchaseRequest{
					ItemID:   items[rand.Intn(len(items))],
					Quantity: 1,
					PlayerID: *playerID,
					ServerID: *serverID,
				}
				results <- purchase(client, *baseURL, accountID, tokens[accountID], body)
			}
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		switch {
		case result.Error == nil:
			stats.Placed++
			stats.SpentByAccount[result.AccountID] += result.Price
			stats.OrdersByAccount[result.AccountID]++
		case result.StatusCode == http.StatusPaymentRequired:
			stats.Rejected++
		default:
			stats.Failed++
			stats.ErrorCounts[result.Error.Error()]++
		}
	}
	stats.TotalTime = time.Since(startTime)

	for _, id := range accounts {
		balance, err := fetchBalance(client, *baseURL, tokens[id])
		if err != nil {
			stats.BalanceFetchError[id] = err
			continue
		}
		stats.FinalBalances[id] = balance
	}

	printResults(stats, accounts)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func purchase(client *http.Client, baseURL, accountID, token string, body dto.PurchaseRequest) TestResult {
	result := TestResult{AccountID: accountID}

	jsonData, err := json.Marshal(body)
	if err != nil {
		result.Error = err
		return result
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/purchases", bytes.NewBuffer(jsonData))
	if err != nil {
		result.Error = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.IdempotencyKeyHeader, uuid.NewString())

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusCreated {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}

	var placed dto.PurchaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		result.Error = err
		return result
	}
	result.Price = placed.Order.Price
	return result
}

func fetchBalance(client *http.Client, baseURL, token string) (int64, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/me", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var account dto.AccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func printResults(stats *TestStats, accounts []string) {
	var p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Purchases:     %d\n", stats.TotalRequests)
	fmt.Printf("Placed:              %d\n", stats.Placed)
	fmt.Printf("Insufficient funds:  %d\n", stats.Rejected)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f purchases/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())
	fmt.Printf("P50 / P90 / P99:     %v / %v / %v\n", p50, p90, p99)

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	// Every placed order must be paid for exactly once and no wallet may go negative
	fmt.Println("\n----------------- WALLET CHECK -----------------")
	consistent := true
	for _, id := range accounts {
		if err, ok := stats.BalanceFetchError[id]; ok {
			fmt.Printf("%-12s: could not read final balance: %v\n", id, err)
			consistent = false
			continue
		}
		start, final, spent := stats.StartingBalances[id], stats.FinalBalances[id], stats.SpentByAccount[id]
		ok := final >= 0 && start-spent == final
		if !ok {
			consistent = false
		}
		fmt.Printf("%-12s: start %d, %d orders, spent %d, final %d, ok=%v\n",
			id, start, stats.OrdersByAccount[id], spent, final, ok)
	}

	fmt.Println("\n================= CONCLUSION =================")
	if consistent {
		fmt.Println("✅ Wallets match placed orders")
	} else {
		fmt.Println("❌ Wallet mismatch: check concurrent debits and top-ups during the run")
	}
	fmt.Println("================================================")
}
