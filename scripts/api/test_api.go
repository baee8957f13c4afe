// Minimal end-to-end smoke test for the AgentHub API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

var (
	baseURL = getenv("API_URL", "http://localhost:8080")
	apiKey  = getenv("API_KEY", "sk-key-123")
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func call(method, path string, body, out any) {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		log.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Fatalf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("decode %s: %v", path, err)
		}
	}
}

func main() {
	var tool struct {
		ID uint64 `json:"id"`
	}
	call("POST", "/tools/", map[string]any{
		"name":        "Search",
		"description": "Web search",
	}, &tool)
	log.Printf("created tool %d", tool.ID)

	var agent struct {
		ID uint64 `json:"id"`
	}
	call("POST", "/agents/", map[string]any{
		"name":        "Smoke Agent",
		"role":        "Tester",
		"description": "Exercises the API",
		"tool_ids":    []uint64{tool.ID},
	}, &agent)
	log.Printf("created agent %d", agent.ID)

	var run struct {
		Agent       string `json:"agent"`
		FinalPrompt string `json:"final_prompt"`
		Response    string `json:"response"`
	}
	call("POST", fmt.Sprintf("/agents/%d/run", agent.ID), map[string]any{
		"prompt": "Calculate 2+2",
		"model":  "gpt-4o",
	}, &run)
	log.Printf("run by %s", run.Agent)
	log.Printf("prompt:   %s", run.FinalPrompt)
	log.Printf("response: %s", run.Response)

	var execs []struct {
		ID    uint64 `json:"id"`
		Model string `json:"model"`
	}
	call("GET", "/executions/", nil, &execs)
	log.Printf("history: %d execution(s)", len(execs))

	log.Print("smoke test passed")
}
