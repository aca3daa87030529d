package main

import (
	"log"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
