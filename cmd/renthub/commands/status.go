package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/renthub/backend/internal/contracts"
	"github.com/wonny/renthub/backend/internal/store"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pending activity summary",
	Long: `Prints the pending reminder activities grouped by type, soonest
first.

Example:
  go run ./cmd/renthub status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("=== RentHub Activity Status ===")

	rt, err := initRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	activityRepo := store.NewActivityRepository(rt.db.Pool)

	pending, err := activityRepo.GetByStatus(context.Background(), contracts.ActivityStatusPending)
	if err != nil {
		return fmt.Errorf("list pending activities: %w", err)
	}

	byType := make(map[contracts.ActivityType]int)
	byPriority := make(map[contracts.ActivityPriority]int)
	for _, a := range pending {
		byType[a.Type]++
		byPriority[a.Priority]++
	}

	fmt.Printf("\nPending activities: %d\n", len(pending))
	fmt.Printf("   Expirations: %d\n", byType[contracts.ActivityTypeContractExpiration])
	fmt.Printf("   Rent payments: %d\n", byType[contracts.ActivityTypeRentPayment])
	fmt.Printf("   High priority: %d\n\n", byPriority[contracts.ActivityPriorityHigh])

	limit := 10
	if len(pending) < limit {
		limit = len(pending)
	}
	for _, a := range pending[:limit] {
		fmt.Printf("  [%-6s] %s  %s\n", a.Priority, a.Date.Format("2006-01-02"), a.Description)
	}
	if len(pending) > limit {
		fmt.Printf("  ... and %d more\n", len(pending)-limit)
	}

	return nil
}
