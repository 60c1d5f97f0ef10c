package atlas

// HistoryOptions configures a History.
type HistoryOptions struct {
	// Root is the path prefix the application lives under. Defaults to "/".
	Root string
	// Silent makes Start record the current fragment without dispatching it.
	Silent bool
	// Verbose logs lifecycle activity and handler failures.
	Verbose bool
}

// NavigateOptions controls a single Navigate call.
type NavigateOptions struct {
	// Trigger dispatches the new fragment through LoadURL.
	Trigger bool
	// Replace overwrites the current location entry instead of pushing a new one.
	Replace bool
}

// SetOptions controls Model.Set.
type SetOptions struct {
	// Silent suppresses change events.
	Silent bool
}
