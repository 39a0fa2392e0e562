package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer fmt.Println("never printed")
	if len(os.Args) > 3 {
		helper()
	}
	os.Exit(1) // want "os.Exit cannot be called in main function of main package"
}
