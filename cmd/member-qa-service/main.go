package main

import (
	"fmt"
	"os"

	"github.com/rs82696/Memeber-qa-Service/qaservice"
)

func main() {
	if err := qaservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
