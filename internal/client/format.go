package client

import "strconv"

// formatNumber renders v the way the host page prints numbers: shortest
// representation, no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalNumber(v *float64, unit string) string {
	if v == nil {
		return notAvailable
	}
	return formatNumber(*v) + unit
}
