package project

// Step names one phase of generation.
type Step string

// Generation steps in execution order.
const (
	StepPreflight Step = "preflight"
	StepBackend   Step = "backend"
	StepCore      Step = "core"
	StepFrontend  Step = "frontend"
	StepProxy     Step = "proxy"
	StepConfig    Step = "config"
	StepOverlay   Step = "overlay"
	StepDatabase  Step = "database"
	StepWiring    Step = "wiring"
	StepPrune     Step = "prune"
	StepVCS       Step = "vcs"
)

// Steps returns every step in execution order.
func Steps() []Step {
	return []Step{
		StepPreflight, StepBackend, StepCore, StepFrontend, StepProxy, StepConfig,
		StepOverlay, StepDatabase, StepWiring, StepPrune, StepVCS,
	}
}

// Title returns a short human-readable description of s.
func (s Step) Title() string {
	switch s {
	case StepPreflight:
		return "Checking target directory"
	case StepBackend:
		return "Copying backend"
	case StepCore:
		return "Copying domain core"
	case StepFrontend:
		return "Copying frontend"
	case StepProxy:
		return "Wiring dev-server proxy"
	case StepConfig:
		return "Writing project config"
	case StepOverlay:
		return "Applying styling overlay"
	case StepDatabase:
		return "Installing persistence adapter"
	case StepWiring:
		return "Writing container wiring"
	case StepPrune:
		return "Pruning unused features"
	case StepVCS:
		return "Initializing git repository"
	default:
		return string(s)
	}
}

// Reporter receives step progress events. Implementations must not block.
type Reporter interface {
	StepStarted(step Step, index, total int)
	StepFinished(step Step, index, total int, err error)
}

type nopReporter struct{}

func (nopReporter) StepStarted(Step, int, int)         {}
func (nopReporter) StepFinished(Step, int, int, error) {}
