package navigation

import (
	"context"
	"fmt"
	"log/slog"
)

// MaxRedirects bounds the redirects Resolve will follow before failing.
const MaxRedirects = 10

// ResultKind enumerates the outcomes of a single navigation step.
type ResultKind int

const (
	ResultRendered ResultKind = iota
	ResultRedirected
	ResultAborted
)

func (k ResultKind) String() string {
	switch k {
	case ResultRendered:
		return "rendered"
	case ResultRedirected:
		return "redirected"
	case ResultAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result describes how a navigation step concluded. Props is set when Kind is
// ResultRendered; Location is set when Kind is ResultRedirected.
type Result struct {
	Kind     ResultKind
	Route    Route
	Target   Target
	Props    Props
	Location string
}

// Navigator evaluates navigations against a Table.
type Navigator struct {
	table  *Table
	logger *slog.Logger
}

// New creates a Navigator over table.
func New(table *Table, logger *slog.Logger) *Navigator {
	return &Navigator{
		table:  table,
		logger: logger.With("component", "navigation"),
	}
}

// Table returns the route table the navigator resolves against.
func (n *Navigator) Table() *Table {
	return n.table
}

// Navigate performs one navigation step: match the path, run the route's
// guard once, and derive props when the guard lets the navigation continue.
func (n *Navigator) Navigate(ctx context.Context, to Target) (Result, error) {
	route, params, ok := n.table.Match(to.Path)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrNoMatch, to.Path)
	}
	to = to.withParams(params)

	decision := Continue()
	if route.Guard != nil {
		decision = route.Guard(ctx, to)
	}

	n.logger.Debug(
		"navigation decision",
		"path", to.Path,
		"route", route.Path,
		"decision", decision.Kind().String(),
	)

	switch decision.Kind() {
	case DecisionRedirect:
		href, err := n.table.Href(decision.Location())
		if err != nil {
			return Result{}, fmt.Errorf("redirect from %s: %w", to.Path, err)
		}
		return Result{Kind: ResultRedirected, Route: route, Target: to, Location: href}, nil
	case DecisionAbort:
		return Result{Kind: ResultAborted, Route: route, Target: to}, nil
	}

	props := Props{}
	if route.Props != nil {
		props = route.Props(to)
	}
	return Result{Kind: ResultRendered, Route: route, Target: to, Props: props}, nil
}

// Resolve navigates to the target and follows redirects until a route renders
// or aborts.
func (n *Navigator) Resolve(ctx context.Context, to Target) (Result, error) {
	for hops := 0; ; hops++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		res, err := n.Navigate(ctx, to)
		if err != nil || res.Kind != ResultRedirected {
			return res, err
		}

		if hops == MaxRedirects {
			return Result{}, fmt.Errorf("%w: last location %s", ErrRedirectLoop, res.Location)
		}

		to, err = ParseTarget(res.Location)
		if err != nil {
			return Result{}, err
		}
	}
}
