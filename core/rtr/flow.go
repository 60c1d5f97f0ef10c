package rtr

// flow tells Tree.Add what to do after a node prefix is consumed.
type flow int

const (
	flowStop  flow = iota // path fully inserted
	flowBegin             // re-enter the loop on a parameter node
	flowNext              // keep scanning
)
