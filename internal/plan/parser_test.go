package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullBlock = `# Refactor Plan

## Phase 1

#### TASK-001: Split the user module

**Priority**: High
**Risk**: low
**Effort**: 2 days
**Dependencies**: None

**What**:
- Extract auth helpers
- Move validation into its own module

**Why**:
- user.py is over 900 lines

**Acceptance Criteria**:
- [ ] user.py under 300 lines
- [x] Tests still pass
`

func TestParse_FullBlock(t *testing.T) {
	tasks := Parse(fullBlock)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "TASK-001", task.ID)
	assert.Equal(t, "Split the user module", task.Title)
	assert.Equal(t, "high", task.Priority, "priority is lowercased")
	assert.Equal(t, "low", task.Risk)
	assert.Equal(t, "2 days", task.Effort)
	assert.Equal(t, "None", task.Dependencies)
	assert.Equal(t, "- Extract auth helpers\n- Move validation into its own module", task.What)
	assert.Equal(t, "- user.py is over 900 lines", task.Why)
	assert.Equal(t, "- [ ] user.py under 300 lines\n- [x] Tests still pass", task.Criteria)
}

func TestParse_MissingFieldsGetDefaults(t *testing.T) {
	tasks := Parse("#### TASK-007: Bare minimum\n\nSome prose, no labeled fields.\n")
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "TASK-007", task.ID)
	assert.Equal(t, "Bare minimum", task.Title)
	assert.Equal(t, DefaultPriority, task.Priority)
	assert.Equal(t, DefaultRisk, task.Risk)
	assert.Equal(t, DefaultEffort, task.Effort)
	assert.Equal(t, DefaultDependencies, task.Dependencies)
	assert.Empty(t, task.What)
	assert.Empty(t, task.Why)
	assert.Empty(t, task.Criteria)
}

func TestParse_MissingRiskDefaultsToMedium(t *testing.T) {
	doc := "#### TASK-002: No risk stated\n\n**Priority**: urgent\n"
	tasks := Parse(doc)
	require.Len(t, tasks, 1)
	assert.Equal(t, "urgent", tasks[0].Priority)
	assert.Equal(t, "medium", tasks[0].Risk)
}

func TestParse_BlockExtents(t *testing.T) {
	// Fields belong to their own block, never the neighbor's.
	doc := `#### TASK-001: First

**Priority**: high

#### TASK-002: Second

**Risk**: high
`
	tasks := Parse(doc)
	require.Len(t, tasks, 2)

	assert.Equal(t, "high", tasks[0].Priority)
	assert.Equal(t, DefaultRisk, tasks[0].Risk)
	assert.Equal(t, DefaultPriority, tasks[1].Priority)
	assert.Equal(t, "high", tasks[1].Risk)
}

func TestParse_FirstMatchWins(t *testing.T) {
	doc := "#### TASK-003: Conflicting labels\n\n**Priority**: low\n**Priority**: urgent\n"
	tasks := Parse(doc)
	require.Len(t, tasks, 1)
	assert.Equal(t, "low", tasks[0].Priority)
}

func TestParse_DuplicateIDsKept(t *testing.T) {
	doc := "#### TASK-004: First copy\n\n#### TASK-004: Second copy\n"
	tasks := Parse(doc)
	require.Len(t, tasks, 2)
	assert.Equal(t, "TASK-004", tasks[0].ID)
	assert.Equal(t, "TASK-004", tasks[1].ID)
	assert.Equal(t, "First copy", tasks[0].Title)
	assert.Equal(t, "Second copy", tasks[1].Title)
}

func TestParse_DocumentOrder(t *testing.T) {
	doc := "#### TASK-009: Last numbered\n\n#### TASK-002: First numbered\n"
	tasks := Parse(doc)
	require.Len(t, tasks, 2)
	assert.Equal(t, "TASK-009", tasks[0].ID)
	assert.Equal(t, "TASK-002", tasks[1].ID)
}

func TestParse_NoTasks(t *testing.T) {
	assert.Empty(t, Parse("# A plan with no task blocks\n\nJust prose.\n"))
	assert.Empty(t, Parse(""))
}

func TestParse_ListRunStopsAtBlankLine(t *testing.T) {
	doc := `#### TASK-005: Contiguity

**What**:
- first item
- second item

- detached item
`
	tasks := Parse(doc)
	require.Len(t, tasks, 1)
	assert.Equal(t, "- first item\n- second item", tasks[0].What)
}

func TestFormatTask_RoundTrip(t *testing.T) {
	original := Task{
		ID:           "TASK-042",
		Title:        "Extract the service layer",
		Priority:     "urgent",
		Risk:         "high",
		Effort:       "1 week",
		What:         "- Pull business logic out of views\n- Introduce a service package",
		Why:          "- Views currently mix transport and domain logic",
		Criteria:     "- [ ] No ORM calls in views\n- [ ] Service layer has tests",
		Dependencies: "TASK-001",
	}

	parsed := Parse(FormatTask(original))
	require.Len(t, parsed, 1)
	assert.Equal(t, original, parsed[0])
}

func TestFormatTask_DefaultsRoundTrip(t *testing.T) {
	original := Task{
		ID:           "TASK-001",
		Title:        "Minimal task",
		Priority:     DefaultPriority,
		Risk:         DefaultRisk,
		Effort:       DefaultEffort,
		Dependencies: DefaultDependencies,
	}

	parsed := Parse(FormatTask(original))
	require.Len(t, parsed, 1)
	assert.Equal(t, original, parsed[0])
}
