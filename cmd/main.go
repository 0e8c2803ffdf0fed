package main

import (
	"fmt"

	"github.com/ostafen/gifmaker/cmd/cmd"
	"github.com/ostafen/gifmaker/internal/env"
)

func main() {
	PrintLogo()

	_ = cmd.Execute()
}

func PrintLogo() {
	fmt.Println("        _  __                 _             ")
	fmt.Println("   __ _(_)/ _|_ __ ___   __ _| | _____ _ __ ")
	fmt.Println("  / _` | | |_| '_ ` _ \\ / _` | |/ / _ \\ '__|")
	fmt.Println(" | (_| | |  _| | | | | | (_| |   <  __/ |   ")
	fmt.Println("  \\__, |_|_| |_| |_| |_|\\__,_|_|\\_\\___|_|   ")
	fmt.Println("  |___/                                     ")
	fmt.Println()
	fmt.Println("GIF89a encoding tool")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
