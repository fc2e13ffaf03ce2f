package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// SpendRequest is the body of POST /api/credits/spend
type SpendRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// BalanceResponse is the body of GET /api/credits
type BalanceResponse struct {
	Credits   int64 `json:"credits"`
	TotalUsed int64 `json:"totalUsed"`
}

// TestResult contains metrics for a single spend
type TestResult struct {
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	Accepted      int
	Rejected      int // 402 Insufficient credits
	Throttled     int // 429 Too many requests
	Failed        int
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	Lock          sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 20, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 50, "Total number of spends to fire")
	amount := flag.Int64("amount", 1, "Credits per spend")
	account := flag.String("account", "load-test-user", "Account ID sent in X-Account-ID")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	start, err := getBalance(client, *baseURL, *account)
	if err != nil {
		fmt.Printf("Failed to read starting balance: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account %s starts with %d credits\n", *account, start.Credits)
	fmt.Printf("Firing %d spends of %d with %d goroutines\n", *totalRequests, *amount, *concurrency)

	stats := &TestStats{
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	startTime := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobID := range jobs {
				record(stats, spend(client, *baseURL, *account, *amount, jobID))
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(startTime)

	final, err := getBalance(client, *baseURL, *account)
	if err != nil {
		fmt.Printf("Failed to read final balance: %v\n", err)
		os.Exit(1)
	}

	printResults(stats, elapsed)

	// Verify the ledger never oversold
	expectedAccepted := int(start.Credits / *amount)
	if expectedAccepted > *totalRequests-stats.Throttled-stats.Failed {
		expectedAccepted = *totalRequests - stats.Throttled - stats.Failed
	}

	ok := true
	if final.Credits < 0 {
		fmt.Printf("FAIL: final balance is negative: %d\n", final.Credits)
		ok = false
	}
	if stats.Accepted != expectedAccepted {
		fmt.Printf("FAIL: %d spends accepted, expected %d\n", stats.Accepted, expectedAccepted)
		ok = false
	}
	spent := int64(stats.Accepted) * (*amount)
	if want := start.Credits - spent; final.Credits != want {
		fmt.Printf("FAIL: final balance %d, expected %d\n", final.Credits, want)
		ok = false
	}
	if !ok {
		os.Exit(1)
	}
	fmt.Printf("PASS: final balance %d, %d spends accepted\n", final.Credits, stats.Accepted)
}

func getBalance(client *http.Client, baseURL, account string) (*BalanceResponse, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/credits", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Account-ID", account)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var balance BalanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func spend(client *http.Client, baseURL, account string, amount int64, jobID int) TestResult {
	payload, _ := json.Marshal(SpendRequest{
		Amount:      amount,
		Description: fmt.Sprintf("Load test spend %d", jobID),
	})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/credits/spend", bytes.NewReader(payload))
	if err != nil {
		return TestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Account-ID", account)
	req.Header.Set("Idempotency-Key", fmt.Sprintf("load-%d-%d", time.Now().UnixNano(), jobID))

	started := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return TestResult{Error: err, ResponseTime: time.Since(started)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return TestResult{StatusCode: resp.StatusCode, ResponseTime: time.Since(started)}
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	switch {
	case result.Error != nil:
		stats.Failed++
		stats.ErrorCounts[result.Error.Error()]++
	case result.StatusCode == http.StatusOK:
		stats.Accepted++
	case result.StatusCode == http.StatusPaymentRequired:
		stats.Rejected++
	case result.StatusCode == http.StatusTooManyRequests:
		stats.Throttled++
	default:
		stats.Failed++
		stats.ErrorCounts[fmt.Sprintf("HTTP %d", result.StatusCode)]++
	}
}

func printResults(stats *TestStats, elapsed time.Duration) {
	fmt.Println("\n=== Spend Load Test Results ===")
	fmt.Printf("Total time: %v\n", elapsed)
	fmt.Printf("Accepted: %d\n", stats.Accepted)
	fmt.Printf("Insufficient credits: %d\n", stats.Rejected)
	fmt.Printf("Throttled: %d\n", stats.Throttled)
	fmt.Printf("Failed: %d\n", stats.Failed)

	if n := len(stats.ResponseTimes); n > 0 {
		sort.Slice(stats.ResponseTimes, func(i, j int) bool {
			return stats.ResponseTimes[i] < stats.ResponseTimes[j]
		})
		fmt.Printf("Median response time: %v\n", stats.ResponseTimes[n/2])
		fmt.Printf("95th percentile: %v\n", stats.ResponseTimes[n*95/100])
		fmt.Printf("Max response time: %v\n", stats.ResponseTimes[n-1])
	}

	for msg, count := range stats.ErrorCounts {
		fmt.Printf("  %s: %d\n", msg, count)
	}
}
