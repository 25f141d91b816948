package main

import (
	"log"

	"github.com/adamspd/medstudy/cmd"
	"github.com/adamspd/medstudy/utils"
)

func main() {
	// Set up logging with timestamps
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cmd.Execute(utils.LoadConfig())
}
