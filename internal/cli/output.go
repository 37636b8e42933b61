package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionResult:
		o.printSession(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Actor response type (matches API)
type Actor struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// SessionResult is the session endpoint response
type SessionResult struct {
	State   string          `json:"state"`
	Actor   *Actor          `json:"actor,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

// HealthResult is the health endpoint response
type HealthResult struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

func (o *Output) printSession(s SessionResult) {
	fmt.Printf("State: %s\n", s.State)
	if s.Actor == nil {
		fmt.Println("Signed in: no")
		return
	}
	fmt.Println("Signed in: yes")
	fmt.Printf("Actor: %s (%s)\n", s.Actor.DisplayName, s.Actor.ID)
	fmt.Printf("Handle: %s\n", s.Actor.Handle)
	fmt.Printf("Role: %s\n", s.Actor.Role)
	if len(s.Profile) > 0 {
		fmt.Printf("Profile: %s\n", string(s.Profile))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Backend: %s\n", h.Backend)
}
