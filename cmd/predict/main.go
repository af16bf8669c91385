// Command predict runs model-free prediction experiments
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("predict: %v", err)
	}
}
