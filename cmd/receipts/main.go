package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"mf-receipts/internal/config"
	"mf-receipts/internal/domain"
	"mf-receipts/internal/gateway"
	"mf-receipts/internal/logger"
	"mf-receipts/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	token     string
	centerVal string
	groupVal  string
	query     string
	payments  []string
	totalIn   string
)

var rootCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Field receipt selection and reconciliation console",
	Long: `Locates a borrower's receipts within the branch/center hierarchy and
reconciles cash against the outstanding rental ledger.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Path to a config file (optional)")
	rootCmd.Flags().StringVar(&token, "token", "", "Session token (required)")
	rootCmd.Flags().StringVar(&centerVal, "center", "", "Center value to select (required)")
	rootCmd.Flags().StringVar(&groupVal, "group", "", "Group value to select")
	rootCmd.Flags().StringVar(&query, "query", "", "Borrower username or receipt id to search for (required)")
	rootCmd.Flags().StringArrayVar(&payments, "pay", nil, "Payment to apply, as receiptID=amount (repeatable)")
	rootCmd.Flags().StringVar(&totalIn, "total", "", "Aggregate total to save")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	session := usecase.NewSessionState()
	if token != "" {
		session.Init(token)
	}

	// --- Dependency wiring, outermost layer first ---
	catalog, centers, err := buildCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	source := gateway.NewStaticSource(cfg.Source.Latency, gateway.DemoBranches(centers), gateway.DemoReceipts())

	workflow, err := usecase.NewReceiptWorkflow(source, session, catalog, usecase.WorkflowConfig{
		RequireGroup: cfg.Receipt.RequireGroup,
		DefaultTotal: cfg.Receipt.DefaultTotal,
	}, log)
	if err != nil {
		return err
	}
	defer workflow.Close()

	// --- Selection ---
	center, ok := catalog.Lookup("centers", centerVal)
	if !ok {
		center = domain.Option{Label: centerVal, Value: centerVal}
	}
	<-workflow.SelectCenter(ctx, center)

	if groupVal != "" {
		group, ok := catalog.Lookup("groups", groupVal)
		if !ok {
			group = domain.Option{Label: groupVal, Value: groupVal}
		}
		if err := workflow.SelectField(ctx, domain.FieldGroup, group); err != nil {
			return err
		}
	}
	workflow.SetSearchQuery(query)

	// --- Search ---
	if err := workflow.Search(ctx); err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			for field, msg := range fieldErrs {
				log.Warn("validation failed", zap.String("field", string(field)), zap.String("message", msg))
			}
		}
		return err
	}

	// --- Payments ---
	for _, p := range payments {
		id, amount, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("malformed --pay %q: want receiptID=amount", p)
		}
		if _, err := workflow.EnterPayment(ctx, id, amount); err != nil {
			return err
		}
	}

	// --- Aggregate total ---
	if totalIn != "" {
		workflow.SetTotalInput(totalIn)
	}
	if err := workflow.SaveTotal(ctx); err != nil {
		return err
	}

	output, err := json.MarshalIndent(workflow.Ledger().Records(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render ledger: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// buildCatalog registers the dropdown lists, from CSV files where
// configured and from the built-in demo lists otherwise. Returns the
// centers list too, since the simulated source derives branches per
// center.
func buildCatalog(ctx context.Context, cfg *config.Config) (*usecase.DropdownCatalog, []domain.Option, error) {
	repo := gateway.NewCSVCatalogRepository()
	catalog := usecase.NewDropdownCatalog()

	load := func(name, path string, fallback []domain.Option) ([]domain.Option, error) {
		options := fallback
		if path != "" {
			var err error
			options, err = repo.GetOptions(ctx, path)
			if err != nil {
				return nil, err
			}
		}
		if err := catalog.Register(name, options); err != nil {
			return nil, err
		}
		return options, nil
	}

	centers, err := load("centers", cfg.Catalog.Centers, demoCenters())
	if err != nil {
		return nil, nil, err
	}
	if _, err := load("groups", cfg.Catalog.Groups, demoGroups()); err != nil {
		return nil, nil, err
	}
	if _, err := load("cashierBranches", cfg.Catalog.CashierBranches, demoCashierBranches()); err != nil {
		return nil, nil, err
	}
	if _, err := load("loanBranches", cfg.Catalog.LoanBranches, demoLoanBranches()); err != nil {
		return nil, nil, err
	}
	return catalog, centers, nil
}

func demoCenters() []domain.Option {
	return []domain.Option{
		{Label: "Center 1", Value: "center1"},
		{Label: "Center 2", Value: "center2"},
		{Label: "Center 3", Value: "center3"},
		{Label: "Center 4", Value: "center4"},
	}
}

func demoGroups() []domain.Option {
	groups := make([]domain.Option, 0, 10)
	for i := 1; i <= 10; i++ {
		groups = append(groups, domain.Option{
			Label: fmt.Sprintf("Group %d", i),
			Value: fmt.Sprintf("group%d", i),
		})
	}
	return groups
}

func demoCashierBranches() []domain.Option {
	return []domain.Option{
		{Label: "Branch 1", Value: "branch1"},
		{Label: "Branch 2", Value: "branch2"},
	}
}

func demoLoanBranches() []domain.Option {
	return []domain.Option{
		{Label: "Branch A", Value: "branchA"},
		{Label: "Branch B", Value: "branchB"},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
