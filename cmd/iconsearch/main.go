// ABOUTME: Main entry point for the iconsearch CLI
// ABOUTME: Searches SVG icon providers and manages attribution records

package main

// main is the entry point for iconsearch.
func main() {
	Execute()
}
