// Command atlas replays navigation scenarios against a router with
// lifecycle events installed and reports what fired.
package main

func main() {
	Execute()
}
