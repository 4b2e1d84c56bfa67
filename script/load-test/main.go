package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/urfave/cli/v3"
)

// createTransaction is the request body posted by the load test
type createTransaction struct {
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	Account         string `json:"account"`
	Subcategory     string `json:"subcategory"`
	Note            string `json:"note"`
	Date            string `json:"date"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of request the workers pick from
type Scenario struct {
	Name   string
	Method string
	Body   func(worker, job int) any
	Path   string
}

type options struct {
	baseURL     string
	token       string
	concurrency int
	total       int
	delay       time.Duration
}

func main() {
	cmd := &cli.Command{
		Name:  "load-test",
		Usage: "Create and list transactions concurrently against a running API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "base URL of the API"},
			&cli.StringFlag{Name: "token", Sources: cli.EnvVars("LOAD_TEST_TOKEN"), Required: true, Usage: "session token of the test user"},
			&cli.IntFlag{Name: "c", Value: 5, Usage: "number of concurrent workers"},
			&cli.IntFlag{Name: "n", Value: 100, Usage: "total number of requests"},
			&cli.DurationFlag{Name: "delay", Value: 100 * time.Millisecond, Usage: "pause before each request"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, options{
				baseURL:     c.String("url"),
				token:       c.String("token"),
				concurrency: int(c.Int("c")),
				total:       int(c.Int("n")),
				delay:       c.Duration("delay"),
			})
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func scenarios() []Scenario {
	expense := func(amount string) func(int, int) any {
		return func(worker, job int) any {
			return createTransaction{
				TransactionType: "expense",
				Amount:          amount,
				Account:         "Cash",
				Subcategory:     "Load test",
				Note:            fmt.Sprintf("worker %d job %d", worker, job),
				Date:            time.Now().UTC().Format("2006.01.02"),
			}
		}
	}

	return []Scenario{
		{Name: "Expense Small", Method: http.MethodPost, Path: "/api/records/transactions", Body: expense("10.00")},
		{Name: "Expense Large", Method: http.MethodPost, Path: "/api/records/transactions", Body: expense("250.50")},
		{Name: "Income", Method: http.MethodPost, Path: "/api/records/transactions", Body: func(worker, job int) any {
			return createTransaction{TransactionType: "income", Amount: "1200.00", Account: "Bank", Subcategory: "Salary"}
		}},
		{Name: "List Page", Method: http.MethodGet, Path: "/api/records/transactions?pageSize=20"},
		{Name: "Search", Method: http.MethodGet, Path: "/api/records/transactions?search=Cash&sortBy=amount&sortOrder=desc"},
	}
}

func run(ctx context.Context, opts options) error {
	if opts.concurrency < 1 || opts.total < 1 {
		return fmt.Errorf("concurrency and request count must be positive")
	}
	mix := scenarios()

	fmt.Printf("Load testing %s\n", opts.baseURL)
	fmt.Printf("Scenarios: %d\n", len(mix))
	fmt.Printf("Concurrency: %d workers\n", opts.concurrency)
	fmt.Printf("Total requests: %d\n", opts.total)
	fmt.Printf("Delay between requests: %v\n", opts.delay)

	stats := &TestStats{
		TotalRequests:   opts.total,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, opts.total),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, opts.total)
	jobs := make(chan int, opts.total)

	var wg sync.WaitGroup
	for i := 0; i < opts.concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(ctx, workerID, opts, mix, jobs, results, stats)
		}(i)
	}

	for i := 0; i < opts.total; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, opts.total, float64(completed)/float64(opts.total)*100)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
	return nil
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		msg := "unknown"
		if result.Error != nil {
			msg = result.Error.Error()
		}
		s.ErrorCounts[msg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func worker(ctx context.Context, id int, opts options, mix []Scenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{Timeout: 10 * time.Second}

	for jobID := range jobs {
		if opts.delay > 0 {
			time.Sleep(opts.delay)
		}

		scenario := mix[rand.Intn(len(mix))]
		stats.Lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		var body *bytes.Reader
		if scenario.Body != nil {
			payload, err := json.Marshal(scenario.Body(id, jobID))
			if err != nil {
				results <- TestResult{Error: err}
				continue
			}
			body = bytes.NewReader(payload)
		} else {
			body = bytes.NewReader(nil)
		}

		req, err := http.NewRequestWithContext(ctx, scenario.Method, opts.baseURL+scenario.Path, body)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+opts.token)

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
