package trading

import (
	"encoding/csv"
	"io"

	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

// WriteTransactionsCSV serialises a transaction list for download, one row
// per document with locale-formatted amounts.
func WriteTransactionsCSV(w io.Writer, transactions []Transaction) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Date", "Direction", "Return", "Counterparty", "User", "Subtotal", "Discount", "Total"}); err != nil {
		return err
	}
	for _, t := range transactions {
		direction := "Sale"
		if t.Direction == "IN" {
			direction = "Purchase"
		}
		isReturn := ""
		if t.IsReturn {
			isReturn = "yes"
		}
		if err := writer.Write([]string{
			t.ID,
			t.CreatedAt.Format("2006-01-02 15:04"),
			direction,
			isReturn,
			t.ContactName,
			t.UserName,
			shared.FormatCurrency(t.Subtotal),
			shared.FormatCurrency(t.TotalDiscount),
			shared.FormatCurrency(t.TotalAmount),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
