package lookup

import "github.com/alovak/paystatus/lookup/models"

// transactionPath locates each transaction type's records inside the vendor
// response: payout responses nest them under "data", payin responses carry
// them at the top level.
var transactionPath = map[models.TransactionType][]string{
	models.Payout: {"data", "transactions"},
	models.Payin:  {"transactions"},
}

// FirstTransaction returns the first transaction record found in a raw
// vendor response, or nil when there is none. Missing levels, null values
// and non-object input all count as "no transactions" rather than errors;
// absence of a record is an expected, reportable outcome.
func FirstTransaction(raw any, typ models.TransactionType) map[string]any {
	node := raw
	for _, key := range transactionPath[typ] {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = obj[key]
	}

	list, ok := node.([]any)
	if !ok || len(list) == 0 {
		return nil
	}

	first, ok := list[0].(map[string]any)
	if !ok {
		return nil
	}

	return first
}
