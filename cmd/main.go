package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ChatRequest mirrors the server's inbound chat payload
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse mirrors the server's reply payload
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Welcome   string `json:"welcome,omitempty"`
}

func main() {
	// Load .env if present
	_ = godotenv.Load()

	baseURL := os.Getenv("FLIGHTDESK_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	client := &http.Client{Timeout: 120 * time.Second}

	fmt.Println("Flight assistant terminal client. Type 'exit' to quit.")
	fmt.Printf("Server: %s\n\n", baseURL)

	sessionID := ""
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		resp, err := sendTurn(client, baseURL, sessionID, line)
		if err != nil {
			log.Printf("Request failed: %v", err)
			continue
		}
		sessionID = resp.SessionID

		if resp.Welcome != "" {
			fmt.Printf("\nassistant> %s\n\n", resp.Welcome)
		}
		fmt.Printf("assistant> %s\n\n", resp.Reply)
	}
}

// sendTurn posts one chat turn to the server and decodes the reply
func sendTurn(client *http.Client, baseURL, sessionID, message string) (*ChatResponse, error) {
	body, err := json.Marshal(ChatRequest{SessionID: sessionID, Message: message})
	if err != nil {
		return nil, err
	}

	resp, err := client.Post(baseURL+"/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &chatResp, nil
}
