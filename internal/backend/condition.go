package backend

import domain "github.com/donaldgifford/searchit/pkg/types"

// Condition display names.
const (
	ConditionNew         = "NEW"
	ConditionRefurbished = "REFURBISHED"
	ConditionUsed        = "USED"
)

// conditionNames maps marketplace condition IDs to display names.
var conditionNames = map[string]string{
	"1000": ConditionNew,
	"2000": ConditionRefurbished,
	"2500": ConditionRefurbished,
	"3000": ConditionUsed,
	"4000": ConditionUsed,
	"5000": ConditionUsed,
	"6000": ConditionUsed,
}

// ConditionName maps a condition code to its display name. Unknown codes
// return domain.NotAvailable.
func ConditionName(code string) string {
	if name, ok := conditionNames[code]; ok {
		return name
	}
	return domain.NotAvailable
}
