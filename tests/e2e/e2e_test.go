package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("E2E_BASE_URL")
	if url == "" {
		t.Skip("E2E_BASE_URL is not set")
	}
	return strings.TrimRight(url, "/")
}

func TestE2E_Site(t *testing.T) {
	base := baseURL(t)
	waitForService(t, base)

	client := &http.Client{Timeout: 15 * time.Second}

	t.Log("Step 1: Render page")
	resp, err := client.Get(base + "/")
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 1 Failed: Expected 200, got %d", resp.StatusCode)
	}
	page := string(body)
	for _, want := range []string{`id="events"`, `id="team"`, `id="contact"`, "Connect With Us"} {
		if !strings.Contains(page, want) {
			t.Errorf("Page does not contain %q", want)
		}
	}
	t.Log("Step 1: Success")

	t.Log("Step 2: Events API")
	var events struct {
		Upcoming []struct {
			Title      string `json:"title"`
			IsUpcoming bool   `json:"is_upcoming"`
		} `json:"upcoming"`
		Past []struct {
			IsUpcoming bool `json:"is_upcoming"`
		} `json:"past"`
	}
	getJSON(t, client, base+"/api/events", &events)

	for _, e := range events.Upcoming {
		if !e.IsUpcoming {
			t.Errorf("Event %q in upcoming list has is_upcoming=false", e.Title)
		}
	}
	for _, e := range events.Past {
		if e.IsUpcoming {
			t.Error("Past list contains an upcoming event")
		}
	}
	t.Logf("Step 2 Success: %d upcoming, %d past", len(events.Upcoming), len(events.Past))

	t.Log("Step 3: Team API")
	var team struct {
		Members []struct {
			DisplayOrder int `json:"display_order"`
		} `json:"members"`
	}
	getJSON(t, client, base+"/api/team", &team)

	for i := 1; i < len(team.Members); i++ {
		if team.Members[i-1].DisplayOrder > team.Members[i].DisplayOrder {
			t.Errorf("Members are not ordered by display_order: %d before %d",
				team.Members[i-1].DisplayOrder, team.Members[i].DisplayOrder)
		}
	}
	t.Logf("Step 3 Success: %d members", len(team.Members))

	t.Log("Step 4: Calendar feed")
	resp, err = client.Get(base + "/events.ics")
	if err != nil {
		t.Fatalf("Failed to get calendar: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(body), "BEGIN:VCALENDAR") {
		t.Errorf("Step 4 Failed: status %d, body %.40q", resp.StatusCode, body)
	}
}

func getJSON(t *testing.T, client *http.Client, url string, out any) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("Failed to get %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode %s: %v", url, err)
	}
}

func waitForService(t *testing.T, base string) {
	t.Log("Waiting for service to start...")
	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatal("Service did not start in time")
		case <-ticker.C:
			resp, err := http.Get(base + "/health")
			if err != nil {
				continue
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				t.Log("Service is UP!")
				return
			}
		}
	}
}
