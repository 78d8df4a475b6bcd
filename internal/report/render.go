// Package report renders an assessment into the modernization report
// document. Rendering is pure: the output depends only on the Report
// value, so identical reports render to byte-identical markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/codelift/codelift/internal/assess"
)

// maxListItems caps the entries shown in each issue list. Full counts
// still appear in section headers; a "... and N more" line marks the cut.
const maxListItems = 10

// Render produces the markdown assessment report, with sections in fixed
// order: Summary, Functionality Inventory, Architecture, Dependencies,
// Test Coverage, Code Quality, Risk Assessment, Refactor Opportunities,
// Recommended Approach, Next Steps.
func Render(r *assess.Report) string {
	var sb strings.Builder

	writeSummary(&sb, r)
	writeInventory(&sb, r)
	writeArchitecture(&sb, r)
	writeDependencies(&sb)
	writeTestCoverage(&sb, r)
	writeCodeQuality(&sb, r)
	writeRiskAssessment(&sb, r)
	writeRefactorOpportunities(&sb, r)
	writeRecommendedApproach(&sb, r)
	writeNextSteps(&sb)

	return sb.String()
}

func writeSummary(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("# Legacy Codebase Assessment\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString("## Executive Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total Files**: %d\n", r.TotalFiles))
	sb.WriteString(fmt.Sprintf("- **Total Lines**: %s\n", humanize.Comma(int64(r.TotalLines))))
	sb.WriteString(fmt.Sprintf("- **Languages**: %s\n", languageSummary(r)))
	sb.WriteString(fmt.Sprintf("- **Framework**: %s\n", r.Framework))
	sb.WriteString(fmt.Sprintf("- **Test Files**: %d\n", r.TestFiles))
	sb.WriteString(fmt.Sprintf("- **Large Files (>%d lines)**: %d\n", assess.LargeFileThreshold, len(r.LargeFiles)))
	sb.WriteString(fmt.Sprintf("- **Complex Functions (complexity >%d)**: %d\n", assess.ComplexityThreshold, len(r.ComplexFunctions)))
	sb.WriteString(fmt.Sprintf("- **TODO/FIXME Comments**: %d\n\n", len(r.Todos)))
}

// languageSummary renders the histogram in fixed bucket order so output
// never depends on map iteration.
func languageSummary(r *assess.Report) string {
	var parts []string
	for _, lang := range []string{assess.LangPython, assess.LangJSTS} {
		if count, ok := r.Languages[lang]; ok {
			parts = append(parts, fmt.Sprintf("%s (%d files)", lang, count))
		}
	}
	if len(parts) == 0 {
		return "None detected"
	}
	return strings.Join(parts, ", ")
}

func writeInventory(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("## Functionality Inventory\n\n")
	sb.WriteString("### Core Features\n\n")
	sb.WriteString("*Manual review needed. Key areas to document:*\n")
	sb.WriteString("- Main user-facing features\n")
	sb.WriteString("- Business logic components\n")
	sb.WriteString("- Data models and relationships\n")
	sb.WriteString("- External integrations\n\n")
	sb.WriteString("### Entry Points\n\n")

	switch r.Framework {
	case "Django":
		sb.WriteString("*Django project:*\n")
		sb.WriteString("- `manage.py runserver` - Development server\n")
		sb.WriteString("- `manage.py` - Management commands\n")
		sb.WriteString("- Check `urls.py` for API endpoints\n")
		sb.WriteString("- Check `admin.py` for admin interface\n\n")
	case "Flask":
		sb.WriteString("*Flask project:*\n")
		sb.WriteString("- Look for `app.py` or `wsgi.py`\n")
		sb.WriteString("- Check route decorators (@app.route)\n\n")
	case "React":
		sb.WriteString("*React project:*\n")
		sb.WriteString("- `npm start` - Development server\n")
		sb.WriteString("- Check `src/App.js` or `src/App.tsx`\n")
		sb.WriteString("- Review `package.json` scripts\n\n")
	}
}

func writeArchitecture(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("## Architecture\n\n")
	sb.WriteString("### Current Structure\n\n")
	sb.WriteString("```\n")
	for _, dir := range r.TopLevelDirs {
		sb.WriteString(dir + "/\n")
	}
	sb.WriteString("```\n\n")
	sb.WriteString("### Issues\n\n")

	if len(r.LargeFiles) > 0 {
		sb.WriteString(fmt.Sprintf("**Large Files (>%d lines): %d**\n\n", assess.LargeFileThreshold, len(r.LargeFiles)))
		for i, lf := range r.LargeFiles {
			if i == maxListItems {
				break
			}
			sb.WriteString(fmt.Sprintf("- ❌ `%s` (%s lines) - Consider splitting\n", lf.Path, humanize.Comma(int64(lf.Lines))))
		}
		writeOverflow(sb, len(r.LargeFiles))
		sb.WriteString("\n")
	}

	if len(r.ComplexFunctions) > 0 {
		sb.WriteString(fmt.Sprintf("**Complex Functions (>%d decision points): %d**\n\n", assess.ComplexityThreshold, len(r.ComplexFunctions)))
		for i, cf := range r.ComplexFunctions {
			if i == maxListItems {
				break
			}
			sb.WriteString(fmt.Sprintf("- ⚠️ `%s::%s` (complexity: %d) - REFACTOR\n", cf.Path, cf.Name, cf.Score))
		}
		writeOverflow(sb, len(r.ComplexFunctions))
		sb.WriteString("\n")
	}
}

// writeOverflow appends the "... and N more" marker when a list was capped.
func writeOverflow(sb *strings.Builder, total int) {
	if total > maxListItems {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", total-maxListItems))
	}
}

func writeDependencies(sb *strings.Builder) {
	sb.WriteString("### Dependencies\n\n")
	sb.WriteString("*Manual review needed:*\n")
	sb.WriteString("- Check `requirements.txt` or `package.json`\n")
	sb.WriteString("- Run security audits: `pip-audit` or `npm audit`\n")
	sb.WriteString("- Check for outdated dependencies\n\n")
}

func writeTestCoverage(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("## Test Coverage\n\n")
	sb.WriteString("### Current State\n\n")

	switch {
	case r.TestFiles == 0:
		sb.WriteString("- ❌ **No test files found** - CRITICAL RISK\n")
		sb.WriteString("- This is the highest priority for modernization\n")
	case r.TestFiles < 10:
		sb.WriteString(fmt.Sprintf("- ⚠️ **Only %d test files found** - LOW COVERAGE\n", r.TestFiles))
		sb.WriteString("- Significant testing gaps likely exist\n")
	default:
		sb.WriteString(fmt.Sprintf("- ✅ %d test files found\n", r.TestFiles))
		sb.WriteString("- Coverage analysis needed (run `pytest --cov` or `npm test -- --coverage`)\n")
	}

	sb.WriteString("\n### Gaps\n\n")
	sb.WriteString("**Critical paths needing characterization tests:**\n")
	sb.WriteString("1. Payment processing (if applicable)\n")
	sb.WriteString("2. User authentication\n")
	sb.WriteString("3. Data validation logic\n")
	sb.WriteString("4. External API integrations\n")
	sb.WriteString("5. Business rule implementations\n\n")
	sb.WriteString("**Action**: Begin with characterization tests for critical paths.\n\n")
}

func writeCodeQuality(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("## Code Quality\n\n")
	sb.WriteString("### Complexity\n\n")

	if len(r.ComplexFunctions) > 0 {
		sb.WriteString(fmt.Sprintf("- Found %d functions with high complexity\n", len(r.ComplexFunctions)))
		sb.WriteString("- Top offenders listed above\n")
		sb.WriteString("- **Action**: Refactor complex functions using Extract Method pattern\n")
	} else {
		sb.WriteString("- ✅ No obviously complex functions detected (basic heuristic)\n")
	}

	sb.WriteString("\n### Technical Debt\n\n")
	if len(r.Todos) > 0 {
		sb.WriteString(fmt.Sprintf("**TODO/FIXME Comments: %d**\n\n", len(r.Todos)))
		for i, todo := range r.Todos {
			if i == maxListItems {
				break
			}
			sb.WriteString(fmt.Sprintf("- %s:%d: %s\n", todo.File, todo.Line, todo.Text))
		}
		writeOverflow(sb, len(r.Todos))
		sb.WriteString("\n**Action**: Convert TODOs to tracked issues\n\n")
	} else {
		sb.WriteString("- ✅ No TODO/FIXME comments found\n\n")
	}

	sb.WriteString("### Linting\n\n")
	sb.WriteString("*Run linters to get detailed report:*\n")
	sb.WriteString("- Python: `ruff check .`\n")
	sb.WriteString("- JavaScript/TypeScript: `npx eslint .`\n\n")
}

func writeRiskAssessment(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("## Risk Assessment\n\n")
	sb.WriteString("### High Risk Areas\n\n")

	var risks []string
	if r.TestFiles == 0 {
		risks = append(risks, "❌ **No tests** - Any change is risky")
	}
	if len(r.ComplexFunctions) > 0 {
		risks = append(risks, fmt.Sprintf("❌ **%d complex functions** - Hard to understand and modify", len(r.ComplexFunctions)))
	}
	if len(r.LargeFiles) > 0 {
		risks = append(risks, fmt.Sprintf("❌ **%d large files** - Difficult to maintain", len(r.LargeFiles)))
	}

	if len(risks) > 0 {
		for _, risk := range risks {
			sb.WriteString(risk + "\n")
		}
	} else {
		sb.WriteString("- ✅ No obvious high-risk areas detected\n")
	}

	sb.WriteString("\n### Mitigation Strategy\n\n")
	sb.WriteString("1. **Write characterization tests first** - Create safety net\n")
	sb.WriteString("2. **Start with quick wins** - Fix linting, remove dead code\n")
	sb.WriteString("3. **Refactor incrementally** - Small, safe changes\n")
	sb.WriteString("4. **Monitor coverage** - Ensure tests increase with changes\n\n")
}

func writeRefactorOpportunities(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("## Refactor Opportunities\n\n")
	sb.WriteString("### Quick Wins (Low Risk, High Value)\n\n")
	sb.WriteString("1. ✅ Run linters and fix auto-fixable issues\n")
	sb.WriteString("2. ✅ Add docstrings to public functions\n")
	sb.WriteString("3. ✅ Remove dead code (unused imports, functions)\n")
	sb.WriteString("4. ✅ Extract hardcoded values to configuration\n")
	sb.WriteString("5. ✅ Update dependencies (with tests)\n\n")
	sb.WriteString("### Strategic Refactors (High Value, Requires Planning)\n\n")

	if len(r.LargeFiles) > 0 {
		sb.WriteString("1. 📋 Split large files into smaller modules\n")
	}
	if len(r.ComplexFunctions) > 0 {
		sb.WriteString("2. 📋 Refactor complex functions (Extract Method pattern)\n")
	}
	sb.WriteString("3. 📋 Extract business logic into service layer\n")
	sb.WriteString("4. 📋 Add comprehensive logging\n")
	sb.WriteString("5. 📋 Improve error handling\n\n")
	sb.WriteString("### Long-Term Improvements\n\n")
	sb.WriteString("1. 🔮 Add API layer (if web app)\n")
	sb.WriteString("2. 🔮 Implement caching strategy\n")
	sb.WriteString("3. 🔮 Add monitoring and alerting\n")
	sb.WriteString("4. 🔮 Containerize application (Docker)\n\n")
}

func writeRecommendedApproach(sb *strings.Builder, r *assess.Report) {
	sb.WriteString("## Recommended Approach\n\n")
	sb.WriteString("### Phase 1: Stabilize (Weeks 1-2)\n\n")
	sb.WriteString("1. ✅ Run this assessment (DONE)\n")
	sb.WriteString("2. 📋 Write characterization tests for critical paths\n")
	sb.WriteString("3. 📋 Fix security vulnerabilities (if any)\n")
	sb.WriteString("4. 📋 Update critical dependencies\n\n")
	sb.WriteString("### Phase 2: Quick Wins (Weeks 3-4)\n\n")
	sb.WriteString("1. 📋 Run linters, fix auto-fixable issues\n")
	sb.WriteString("2. 📋 Remove dead code\n")
	sb.WriteString("3. 📋 Add missing docstrings\n")
	sb.WriteString("4. 📋 Extract configuration to environment variables\n")
	sb.WriteString("5. 📋 Improve test coverage to 50%\n\n")
	sb.WriteString("### Phase 3: Strategic Refactor (Months 2-3)\n\n")

	if len(r.LargeFiles) > 0 {
		sb.WriteString("1. 📋 Split large files into modules\n")
	}
	if len(r.ComplexFunctions) > 0 {
		sb.WriteString("2. 📋 Refactor complex functions\n")
	}
	sb.WriteString("3. 📋 Extract service layer\n")
	sb.WriteString("4. 📋 Add API layer (if applicable)\n")
	sb.WriteString("5. 📋 Improve test coverage to 80%\n\n")
	sb.WriteString("### Phase 4: Long-Term (Months 4-6)\n\n")
	sb.WriteString("1. 📋 Consider architectural improvements\n")
	sb.WriteString("2. 📋 Add caching and optimization\n")
	sb.WriteString("3. 📋 Implement monitoring\n")
	sb.WriteString("4. 📋 Add CI/CD pipeline\n\n")
}

func writeNextSteps(sb *strings.Builder) {
	sb.WriteString("## Next Steps\n\n")
	sb.WriteString("1. **Review this assessment** with your team\n")
	sb.WriteString("2. **Create refactor plan**: `docs/modernization/refactor-plan.md`\n")
	sb.WriteString("   - Break phases into discrete tasks\n")
	sb.WriteString("   - Prioritize by risk and value\n")
	sb.WriteString("   - Define acceptance criteria\n")
	sb.WriteString("3. **Begin characterization tests** for critical paths\n")
	sb.WriteString("4. **Create issues**: `codelift issues create`\n")
	sb.WriteString("5. **Start with quick wins** to build momentum\n\n")
	sb.WriteString("## Success Criteria\n\n")
	sb.WriteString("- [ ] Test coverage >80%\n")
	sb.WriteString("- [ ] All linting issues resolved\n")
	sb.WriteString("- [ ] No security vulnerabilities\n")
	sb.WriteString(fmt.Sprintf("- [ ] No functions with complexity >%d\n", assess.ComplexityThreshold))
	sb.WriteString(fmt.Sprintf("- [ ] No files >%d lines\n", assess.LargeFileThreshold))
	sb.WriteString("- [ ] All critical paths have characterization tests\n")
	sb.WriteString("- [ ] Dependencies up-to-date\n")
	sb.WriteString("- [ ] Documentation complete\n\n")
	sb.WriteString("---\n\n")
	sb.WriteString("**Generated by:** `codelift assess`\n")
}
