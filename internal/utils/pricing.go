package utils

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is returned when a rental duration is below one day.
// The booking form constrains the minimum to 1, but the calculation still
// rejects anything lower.
var ErrInvalidDuration = errors.New("rental duration must be at least 1 day")

// ComputeRentalTotal returns pricePerDayPaise * durationDays. Money is kept
// in integer paise throughout; formatting happens at the presentation edge.
func ComputeRentalTotal(pricePerDayPaise int64, durationDays int32) (int64, error) {
	if durationDays < 1 {
		return 0, ErrInvalidDuration
	}
	return pricePerDayPaise * int64(durationDays), nil
}

// FormatCurrency renders an amount of paise with the rupee symbol and exactly
// two decimal places, e.g. 150000 -> "₹1500.00".
func FormatCurrency(amountPaise int64) string {
	return fmt.Sprintf("₹%d.%02d", amountPaise/100, amountPaise%100)
}
