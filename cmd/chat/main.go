// Package main provides a terminal chat client for the study platform API.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Terminal colors
const (
	colorCyan   = "\033[96m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorBold   = "\033[1m"
	colorReset  = "\033[0m"
)

// ChatRequest is the /chat request body.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the /chat response body.
type ChatResponse struct {
	Response        string `json:"response"`
	DetectedSubject string `json:"detected_subject"`
	SessionID       string `json:"session_id"`
}

// SubjectsResponse is the /subjects response body.
type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
	Count    int      `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func printWelcome() {
	line := strings.Repeat("=", 60)
	fmt.Printf(`
%s%s
   STUDY PLATFORM - Your Personal Learning Assistant
%s%s

Subjects: Python, LangGraph, LangChain, JavaScript, LLM,
          Automation, n8n, GoHighLevel

Commands:
  %s/subjects%s  - List all subjects
  %s/clear%s     - Clear screen
  %s/quit%s      - Exit chatbot

Just type your question and I'll route it to the right assistant!
%s%s%s

`, colorCyan, line, line, colorReset,
		colorYellow, colorReset,
		colorYellow, colorReset,
		colorYellow, colorReset,
		colorCyan, line, colorReset)
}

func printSubjects(client *resty.Client) {
	var subjects SubjectsResponse
	resp, err := client.R().SetResult(&subjects).Get("/subjects")
	if err != nil || resp.IsError() {
		fmt.Printf("%sFailed to fetch subjects%s\n\n", colorYellow, colorReset)
		return
	}
	fmt.Printf("\n%sAvailable subjects:%s\n", colorGreen, colorReset)
	for _, s := range subjects.Subjects {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Println()
}

// handleCommand handles slash commands. Returns false to exit.
func handleCommand(client *resty.Client, command string) bool {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "/quit", "/exit", "/q":
		fmt.Printf("\n%sGoodbye! Happy studying!%s\n\n", colorCyan, colorReset)
		return false
	case "/subjects":
		printSubjects(client)
	case "/clear", "/cls":
		fmt.Print("\033[2J\033[H")
		printWelcome()
	case "/help":
		fmt.Printf(`
%sCommands:%s
  /subjects  - List all subjects
  /clear     - Clear screen
  /quit      - Exit chatbot

%sTips:%s
  - Just ask any question, I'll detect the subject
  - Say "save this as a note" to save information
  - Ask "how did I solve..." to search past solutions
  - Ask "search the web for..." for latest info

`, colorCyan, colorReset, colorCyan, colorReset)
	}
	return true
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "study platform API address")
	sessionID := flag.String("session", "terminal_session", "session identifier")
	flag.Parse()

	log.SetFlags(log.Ltime)

	client := resty.New().
		SetBaseURL(*addr).
		SetTimeout(2 * time.Minute)

	printWelcome()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%sYou:%s ", colorBold, colorReset)
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, "/") {
			if !handleCommand(client, input) {
				return
			}
			continue
		}

		fmt.Printf("%sThinking...%s\r", colorYellow, colorReset)

		var chatResp ChatResponse
		var apiErr errorResponse
		resp, err := client.R().
			SetBody(ChatRequest{Message: input, SessionID: *sessionID}).
			SetResult(&chatResp).
			SetError(&apiErr).
			Post("/chat")

		fmt.Print(strings.Repeat(" ", 20), "\r")

		if err != nil {
			fmt.Printf("\n%sError: %v%s\n", colorYellow, err, colorReset)
			fmt.Println("Is the server running?")
			continue
		}
		if resp.IsError() {
			fmt.Printf("\n%sError: %s%s\n\n", colorYellow, apiErr.Error, colorReset)
			continue
		}

		subject := chatResp.DetectedSubject
		if subject == "" {
			subject = "general"
		}
		fmt.Printf("\n%s[%s Assistant]%s\n%s\n\n",
			colorGreen, strings.ToUpper(subject), colorReset, chatResp.Response)
	}
}
