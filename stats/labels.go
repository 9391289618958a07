package stats

// MethodUnknown is the bucket for cheers with no payment method recorded.
const MethodUnknown = "unknown"

var methodLabels = map[string]string{
	"paypay": "PayPay",
	"credit": "Credit Card",
	"cash":   "Cash",
}

// MethodLabel maps a payment method code to its display label. Codes the
// dashboard doesn't know about pass through unchanged.
func MethodLabel(code string) string {
	if label, ok := methodLabels[code]; ok {
		return label
	}
	return code
}
