package plan

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPlanPath is where the refactor plan lives relative to the
// project root, next to the assessment report it is distilled from.
const DefaultPlanPath = "docs/modernization/refactor-plan.md"

// Template is the starter refactor plan. Task blocks follow the format
// Parse understands; edit the samples and add more.
const Template = `# Refactor Plan

Distilled from docs/modernization/assessment.md. Each task below becomes
one tracker issue. Keep the heading and labeled-field format intact.

## Phase 1: Stabilize

#### TASK-001: Write characterization tests for critical paths

**Priority**: high
**Risk**: low
**Effort**: 1 week
**Dependencies**: None

**What**:
- Identify the top 5 critical code paths
- Capture current behavior in characterization tests

**Why**:
- Refactoring without a safety net is the biggest modernization risk

**Acceptance Criteria**:
- [ ] Each critical path has at least one passing test
- [ ] Tests run in CI

## Phase 2: Quick Wins

#### TASK-002: Split the largest files into focused modules

**Priority**: medium
**Risk**: medium
**Effort**: 3 days
**Dependencies**: TASK-001

**What**:
- Break files over the size threshold into single-responsibility modules

**Why**:
- Oversized files are the main maintainability complaint in the assessment

**Acceptance Criteria**:
- [ ] No file exceeds the size threshold
- [ ] Characterization tests still pass
`

// WriteTemplate writes the starter plan to path, creating parent
// directories. Refuses to overwrite an existing plan.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating plan directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("plan already exists: %s", path)
		}
		return fmt.Errorf("creating plan: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Template); err != nil {
		return fmt.Errorf("writing plan template: %w", err)
	}
	return nil
}
