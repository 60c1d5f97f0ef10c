package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Route is one line of a routes file: a pattern and a fragment it must match.
type Route struct {
	Pattern  string
	Fragment string
}

// Routes loads every "pattern fragment" line from fileName. Blank lines and '#' comments are skipped.
func Routes(fileName string) []Route {
	var routes []Route

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		route := Route{Pattern: parts[0], Fragment: parts[0]}
		if len(parts) > 1 {
			route.Fragment = parts[1]
		}
		routes = append(routes, route)
	}

	return routes
}

// Lines streams the lines of a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		file, err := os.Open(fileName)
		if err != nil {
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
