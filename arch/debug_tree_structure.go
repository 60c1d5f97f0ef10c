package main

import (
	"fmt"

	"github.com/rohanthewiz/atlas/core/rtr"
)

func main() {
	r := rtr.New[string]()

	// Overlapping parameter routes that share the "users/" prefix
	fmt.Println("Adding route 1: users/:id")
	r.Add("users/:id", "Handler 1: id")

	fmt.Println("Adding route 2: users/:id/posts/:post")
	r.Add("users/:id/posts/:post", "Handler 2: id/posts/post")

	fmt.Println("Adding route 3: users/new")
	r.Add("users/new", "Handler 3: static")

	for _, fragment := range []string{"users/7", "users/7/posts/9", "users/new", "users/7/posts"} {
		fmt.Printf("\nLooking up: %s\n", fragment)

		data, params, ok := r.Lookup(fragment)
		if !ok {
			fmt.Println("No match")
			continue
		}
		fmt.Printf("Handler: %s\n", data)
		fmt.Printf("Parameters:\n")
		for i, p := range params {
			fmt.Printf("  [%d] %s = %s\n", i, p.Key, p.Value)
		}
	}

	fmt.Println("\nRoute list:")
	for _, route := range r.ListRoutes() {
		fmt.Printf("  %-24s dynamic=%t\n", route.Pattern, route.Dynamic)
	}
}
