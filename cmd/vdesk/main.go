package main

import (
	"github.com/venuedesk/venuedesk/internal/cli"
)

func main() {
	cli.Execute()
}
