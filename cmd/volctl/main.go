package main

import "os"

func main() {
	os.Exit(run(newApp(os.Stdout, os.Stderr), os.Args[1:]))
}
