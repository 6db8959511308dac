// Command send_event posts sample CodeCommit notification payloads to a
// running ccnotify instance and prints the trigger decisions. Useful
// for smoke-testing a deployment without wiring an SNS topic.
//
// Usage:
//
//	go run scripts/send_event.go [service-url]
//
// Environment:
//
//	WEBHOOK_TOKEN   shared token, sent as X-Webhook-Token when set
//	COMMIT_MESSAGE  optional commit message, sent as X-Commit-Message
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type sampleEvent struct {
	name   string
	detail map[string]interface{}
}

var samples = []sampleEvent{
	{
		name: "commit to main",
		detail: map[string]interface{}{
			"event":             "referenceUpdated",
			"referenceType":     "branch",
			"referenceName":     "main",
			"referenceFullName": "refs/heads/main",
			"commitId":          "0f2c3de4a5b6",
			"oldCommitId":       "9e8d7c6b5a43",
			"repositoryName":    "acme-service",
		},
	},
	{
		name: "pull request created",
		detail: map[string]interface{}{
			"event":                "pullRequestCreated",
			"isMerged":             "False",
			"pullRequestStatus":    "Open",
			"pullRequestId":        "7",
			"title":                "Add login endpoint",
			"sourceReference":      "refs/heads/feat/add-login",
			"destinationReference": "refs/heads/main",
			"sourceCommit":         "1a2b3c4d5e6f",
			"destinationCommit":    "6f5e4d3c2b1a",
			"repositoryNames":      []string{"acme-service"},
		},
	},
	{
		name: "pull request merged",
		detail: map[string]interface{}{
			"event":                "pullRequestMergeStatusUpdated",
			"isMerged":             "True",
			"pullRequestStatus":    "Closed",
			"pullRequestId":        "7",
			"mergeOption":          "FAST_FORWARD_MERGE",
			"sourceReference":      "refs/heads/feat/add-login",
			"destinationReference": "refs/heads/main",
			"sourceCommit":         "1a2b3c4d5e6f",
			"destinationCommit":    "6f5e4d3c2b1a",
			"repositoryNames":      []string{"acme-service"},
		},
	},
}

func envelope(detail map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"account":             "111122223333",
		"detailType":          "CodeCommit Repository State Change",
		"region":              "eu-west-1",
		"source":              "aws.codecommit",
		"time":                time.Now().UTC().Format(time.RFC3339),
		"notificationRuleArn": "arn:aws:codestar-notifications:eu-west-1:111122223333:notificationrule/smoke",
		"resources":           []string{"arn:aws:codecommit:eu-west-1:111122223333:acme-service"},
		"detail":              detail,
	}
}

func sendEvent(serviceURL string, sample sampleEvent) error {
	payload, err := json.Marshal(envelope(sample.detail))
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", serviceURL+"/event", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := os.Getenv("WEBHOOK_TOKEN"); token != "" {
		req.Header.Set("X-Webhook-Token", token)
	}
	if msg := os.Getenv("COMMIT_MESSAGE"); msg != "" {
		req.Header.Set("X-Commit-Message", msg)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n", sample.name)
	fmt.Printf("Status: %d\n", resp.StatusCode)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(body))
	}
	return nil
}

func main() {
	serviceURL := "http://localhost:3000"
	if len(os.Args) > 1 {
		serviceURL = os.Args[1]
	}

	fmt.Printf("Sending sample events to %s\n\n", serviceURL)
	for _, sample := range samples {
		if err := sendEvent(serviceURL, sample); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to send %q: %v\n", sample.name, err)
			os.Exit(1)
		}
		fmt.Println()
	}
}
