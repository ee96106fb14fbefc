package commands

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"phone-loan/domain"
	"phone-loan/service"
)

func quoteCmd() *cobra.Command {
	var (
		identity string
		income   string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the devices an applicant can afford, with loan amounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(income)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := service.NewEligibilityService(a.catalog, nil).Evaluate(cmd.Context(), domain.EligibilityInput{
				IdentityNumber: identity,
				MonthlyIncome:  amount,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVar(&identity, "id", "", "13-digit national identity number")
	cmd.Flags().StringVar(&income, "income", "", "monthly income")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}
