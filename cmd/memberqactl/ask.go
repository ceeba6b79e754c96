package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func runAsk(apiURL, question string, out io.Writer) error {
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}
	body, _ := json.Marshal(map[string]string{"question": question})
	resp, err := http.Post(apiURL+"/ask", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	var reply struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, reply.Answer)
	return err
}
