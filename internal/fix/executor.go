package fix

import (
	"log/slog"

	"github.com/CosmoTheDev/actionfix/models"
)

// Executor applies planned fixes against one repository checkout. Workflow
// files are read, mutated in memory, and rewritten in place; there is no
// locking and no rollback.
type Executor struct {
	dir string
}

// NewExecutor creates an Executor rooted at dir (the repository checkout).
func NewExecutor(dir string) *Executor {
	if dir == "" {
		dir = "."
	}
	return &Executor{dir: dir}
}

// Apply runs each fix in list order and records a per-fix outcome. One
// fix's failure never aborts the rest, and nothing is retried. The second
// return value collects the routines' free-text notes for the report.
func (e *Executor) Apply(fixes []models.Fix) ([]models.FixOutcome, []string) {
	outcomes := make([]models.FixOutcome, 0, len(fixes))
	var notes []string

	for _, fx := range fixes {
		slog.Info("Applying fix", "kind", fx.Kind, "description", fx.Description)

		var res routineResult
		switch fx.Kind {
		case models.FixProfileReadme:
			res = e.fixProfileReadme()
		case models.FixCodeQL:
			res = e.fixCodeQL()
		case models.FixMetrics:
			res = e.fixMetrics()
		case models.FixPermissions:
			res = e.fixPermissions()
		default:
			slog.Error("Unknown fix kind", "kind", fx.Kind)
			res = routineResult{cause: models.CauseParse}
		}

		notes = append(notes, res.notes...)
		outcomes = append(outcomes, models.FixOutcome{
			Description: fx.Description,
			Success:     res.ok(),
			Cause:       res.cause,
		})

		if res.ok() {
			slog.Info("Fix applied", "description", fx.Description)
		} else {
			slog.Error("Fix failed", "description", fx.Description, "cause", res.cause, "error", res.err)
		}
	}

	return outcomes, notes
}
