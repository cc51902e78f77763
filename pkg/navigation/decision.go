package navigation

import "context"

// DecisionKind enumerates the outcomes a Guard can produce.
type DecisionKind int

const (
	DecisionContinue DecisionKind = iota
	DecisionRedirect
	DecisionAbort
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionContinue:
		return "continue"
	case DecisionRedirect:
		return "redirect"
	case DecisionAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Decision is the single outcome of a Guard. A guard returns exactly one
// Decision per call; the zero value continues the navigation.
type Decision struct {
	kind     DecisionKind
	location Location
}

// Continue lets the navigation proceed to the matched route.
func Continue() Decision {
	return Decision{kind: DecisionContinue}
}

// Redirect replaces the navigation with one to loc.
func Redirect(loc Location) Decision {
	return Decision{kind: DecisionRedirect, location: loc}
}

// Abort cancels the navigation.
func Abort() Decision {
	return Decision{kind: DecisionAbort}
}

func (d Decision) Kind() DecisionKind {
	return d.kind
}

// Location returns the redirect destination. It is only meaningful when
// Kind is DecisionRedirect.
func (d Decision) Location() Location {
	return d.location
}

// Guard runs before a route is entered. It may block on I/O and must honor ctx.
type Guard func(ctx context.Context, to Target) Decision
