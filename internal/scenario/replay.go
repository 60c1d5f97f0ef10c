package scenario

import (
	"errors"

	"github.com/rohanthewiz/atlas"
	"github.com/rohanthewiz/serr"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Step    Step
	Matched bool
	Err     error
}

// Result is everything a replay produced.
type Result struct {
	Router  *atlas.Router
	Journal *atlas.Journal
	Start   StepResult
	Steps   []StepResult
}

// Failed counts the steps whose handler returned an error.
func (res *Result) Failed() int {
	n := 0
	for _, step := range res.Steps {
		if step.Err != nil {
			n++
		}
	}
	return n
}

// Options adjusts a replay.
type Options struct {
	// Root is used when the scenario sets none.
	Root    string
	Verbose bool
}

// Replay builds a history and router for the scenario, installs the
// lifecycle interceptors, starts the history and runs every step.
// Handler errors are recorded per step; they do not stop the replay.
func (sc *Scenario) Replay(opts Options) (*Result, error) {
	root := sc.Root
	if root == "" {
		root = opts.Root
	}

	start := sc.Start
	if start == "" {
		start = "/"
	}

	loc := atlas.NewMemoryLocation(start)
	h := atlas.NewHistory(loc, atlas.HistoryOptions{Root: root, Silent: sc.Silent, Verbose: opts.Verbose})
	r := atlas.NewRouter(h)
	atlas.All(r)

	res := &Result{Router: r, Journal: atlas.NewJournal().Watch(r)}

	for _, route := range sc.Routes {
		r.Route(route.Pattern, route.Name, handlerFor(route))
	}

	matched, err := h.Start()
	res.Start = StepResult{Matched: matched, Err: err}
	if err != nil && !isHandlerError(err) {
		return nil, serr.Wrap(err, "starting history")
	}

	for _, step := range sc.Steps {
		matched, err := runStep(h, step)
		res.Steps = append(res.Steps, StepResult{Step: step, Matched: matched, Err: err})
	}
	return res, nil
}

func runStep(h *atlas.History, step Step) (bool, error) {
	switch step.Action {
	case ActionNavigate:
		return h.Navigate(step.Fragment, atlas.NavigateOptions{Trigger: step.Trigger, Replace: step.Replace})
	case ActionLoad:
		return h.LoadURL(step.Fragment)
	case ActionBack:
		return h.Back()
	case ActionForward:
		return h.Forward()
	case ActionCheck:
		return h.CheckURL()
	}
	return false, serr.New("unknown step action", "action", step.Action)
}

// HandlerError is returned by routes marked to fail.
type HandlerError struct {
	Route string
}

func (e *HandlerError) Error() string {
	return "handler for " + e.Route + " failed"
}

func isHandlerError(err error) bool {
	var he *HandlerError
	return errors.As(err, &he)
}

func handlerFor(route Route) atlas.Handler {
	if !route.Fail {
		return func(r *atlas.Router, params atlas.Params) error { return nil }
	}
	return func(r *atlas.Router, params atlas.Params) error {
		return &HandlerError{Route: route.Pattern}
	}
}
