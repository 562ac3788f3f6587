package cmd

import (
	"clearahead/internal/model"

	"github.com/spf13/cobra"
)

var billsGroup = obligationGroup{
	kinds:   []model.ObligationKind{model.KindFixedBill},
	addKind: model.KindFixedBill,
	noun:    "bills",
}

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List and edit essential bills",
	RunE:  billsGroup.list,
}

func init() {
	billsGroup.attach(billsCmd)
	rootCmd.AddCommand(billsCmd)
}
