package casefile

import (
	"delivery-plan-solver/internal/domain"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// FormatSolution renders the plan report: activated hubs, the route walk and
// the cost metrics, with the measured solve time appended in seconds. An
// infeasible plan renders with an empty route and infinite costs rather than
// failing.
func FormatSolution(plan *domain.Plan, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString("// --- ACTIVATED HUBS ---\n")
	for _, id := range plan.ActiveHubs {
		fmt.Fprintf(&b, "HUB_ID_%d\n", id)
	}

	b.WriteString("\n// --- OPTIMAL ROUTE ---\n")
	b.WriteString(formatRoute(plan.Route))
	b.WriteString("\n")

	b.WriteString("\n// --- METRICS ---\n")
	fmt.Fprintf(&b, "TOTAL_COST: %.2f\n", plan.TotalCost)
	fmt.Fprintf(&b, "DISTANCE_TRAVELED: %.2f\n", plan.Distance)
	fmt.Fprintf(&b, "HUB_COST: %.2f\n", plan.HubCost)
	fmt.Fprintf(&b, "EXECUTION_TIME: %.6f seconds\n", elapsed.Seconds())

	return b.String()
}

// WriteSolution writes the plan report to path, replacing any previous file.
func WriteSolution(path string, plan *domain.Plan, elapsed time.Duration) error {
	if err := os.WriteFile(path, []byte(FormatSolution(plan, elapsed)), 0o644); err != nil {
		return fmt.Errorf("write solution: %w", err)
	}
	return nil
}

func formatRoute(route []int) string {
	parts := make([]string, len(route))
	for i, node := range route {
		parts[i] = strconv.Itoa(node)
	}
	return strings.Join(parts, " -> ")
}
