package cmd

import (
	"clearahead/internal/model"

	"github.com/spf13/cobra"
)

var incomeGroup = obligationGroup{
	kinds:   []model.ObligationKind{model.KindWage, model.KindBenefit, model.KindOtherIncome},
	addKind: model.KindOtherIncome,
	noun:    "income",
}

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "List and edit income sources",
	RunE:  incomeGroup.list,
}

func init() {
	incomeGroup.attach(incomeCmd)
	rootCmd.AddCommand(incomeCmd)
}
