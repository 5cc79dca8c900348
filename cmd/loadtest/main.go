package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type HierarchyEntry struct {
	GithubUser string `json:"github_user"`
	Role       string `json:"role,omitempty"`
	PodLead    string `json:"pod_lead,omitempty"`
}

var (
	targetHost = flag.String("host", "http://localhost:8080", "адрес сервиса")
	rps        = flag.Int("rps", 20, "запросов в секунду")
	duration   = flag.Duration("duration", 3*time.Minute, "длительность атаки")

	users      []string
	domains    []string
	dimensions = []string{"domains", "trainers", "reviewers", "interfaces", "pod-leads"}
	sortFields = []string{"", "total_tasks", "completed_tasks", "rework_percentage", "name"}
	httpc      = &http.Client{Timeout: 10 * time.Second}
)

func putJSON(u string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPut, u, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func getJSON(u string, dst any) error {
	resp, err := httpc.Get(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("GET %s returned %d", u, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// Seed
func seedData() error {
	log.Println("Seeding: uploading hierarchy...")

	var entries []HierarchyEntry
	for p := 1; p <= 5; p++ {
		lead := fmt.Sprintf("lead-%d", p)
		for u := 1; u <= 20; u++ {
			user := fmt.Sprintf("dev-%d-%d", p, u)
			entries = append(entries, HierarchyEntry{GithubUser: user, Role: "trainer", PodLead: lead})
			users = append(users, user)
		}
	}

	status, err := putJSON(*targetHost+"/api/hierarchy", map[string]any{"entries": entries})
	if err != nil {
		return err
	}
	if status >= 400 {
		log.Printf("WARN hierarchy returned %d\n", status)
	}

	var list struct {
		Domains []string `json:"domains"`
	}
	if err := getJSON(*targetHost+"/api/domains/list", &list); err != nil {
		return err
	}
	domains = list.Domains

	log.Printf("Seed completed: users=%d domains=%d\n", len(users), len(domains))
	return nil
}

func randomDomain() string {
	if len(domains) == 0 || rand.Intn(2) == 0 {
		return ""
	}
	return domains[rand.Intn(len(domains))]
}

func withQuery(path string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return *targetHost + path
	}
	return *targetHost + path + "?" + q.Encode()
}

// Targeter
func makeTargeter() vegeta.Targeter {
	accept := map[string][]string{"Accept": {"application/json"}}

	return func(t *vegeta.Target) error {
		r := rand.Float64()
		t.Method = http.MethodGet
		t.Body = nil
		t.Header = accept

		switch {
		// 50% агрегаты
		case r < 0.50:
			dim := dimensions[rand.Intn(len(dimensions))]
			t.URL = withQuery("/api/aggregation/"+dim, map[string]string{
				"domain":  randomDomain(),
				"sort_by": sortFields[rand.Intn(len(sortFields))],
				"limit":   "50",
			})
		// 20% список PR
		case r < 0.70:
			t.URL = withQuery("/api/prs", map[string]string{
				"domain": randomDomain(),
				"offset": fmt.Sprint(rand.Intn(5) * 50),
			})
		// 15% сводка
		case r < 0.85:
			t.URL = *targetHost + "/api/overview"
		// 10% разработчики
		case r < 0.95:
			t.URL = withQuery("/api/developers", map[string]string{"search": users[rand.Intn(len(users))][:5]})
		// 4.5% таймлайн
		case r < 0.995:
			t.URL = withQuery("/api/stats/timeline", map[string]string{"days": "30", "domain": randomDomain()})
		// 0.5% запуск синхронизации, большинство получит 409
		default:
			t.Method = http.MethodPost
			t.URL = *targetHost + "/api/sync"
			t.Header = map[string][]string{"Content-Type": {"application/json"}}
			t.Body = []byte(`{}`)
		}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: *rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", *targetHost, *duration)
	for res := range attacker.Attack(targeter, rate, *duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, n := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, n)
	}
}

func main() {
	flag.Parse()

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
