package main

import (
	"log"

	"github.com/psds-microservice/shop-api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
