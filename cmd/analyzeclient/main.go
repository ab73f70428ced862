// Command analyzeclient uploads an audio file to a running insights service
// and prints the transcription and structured analysis.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

func main() {
	audioFile := flag.String("audio", "testdata/sample-call.wav", "Path to audio file")
	serverURL := flag.String("server", "http://localhost:8080", "Insights service base URL")
	flag.Parse()

	f, err := os.Open(*audioFile)
	if err != nil {
		log.Fatalf("Failed to open audio file: %v", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filepath.Base(*audioFile))
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		log.Fatalf("Failed to read audio file: %v", err)
	}
	if err := mw.Close(); err != nil {
		log.Fatalf("Failed to finish form: %v", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(*audioFile))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	log.Printf("Uploading %s (%s) to %s", *audioFile, contentType, *serverURL)

	client := &http.Client{Timeout: 10 * time.Minute}
	resp, err := client.Post(*serverURL+"/v1/analyze", mw.FormDataContentType(), &body)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Server returned %d: %s", resp.StatusCode, payload)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		fmt.Println(string(payload))
		return
	}
	fmt.Println(pretty.String())
}
