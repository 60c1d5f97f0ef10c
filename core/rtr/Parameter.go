package rtr

// Parameter is a value captured by a ':name' or '*name' segment.
//
//	pattern:  users/:id/posts/:post
//	fragment: users/7/posts/12
//	=> []Parameter{{"id", "7"}, {"post", "12"}}
type Parameter struct {
	Key   string
	Value string
}
