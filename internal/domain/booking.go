package domain

type PaymentState string

const (
	PaymentStateIdle       PaymentState = "IDLE"
	PaymentStateAwaiting   PaymentState = "AWAITING_PAYMENT"
	PaymentStateProcessing PaymentState = "PROCESSING"
	PaymentStateConfirmed  PaymentState = "CONFIRMED"
)

// BookingRequest carries the customer's booking form input. It is validated
// before a transaction is created and never persisted beyond that.
type BookingRequest struct {
	ItemID       int32  `json:"item_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DurationDays int32  `json:"duration_days"`
}

// Transaction is the single pending booking-plus-payment record. Invariant:
// TotalAmountPaise == Item.PricePerDayPaise * DurationDays for as long as the
// transaction exists.
type Transaction struct {
	Item             *EquipmentItem `json:"item"`
	CustomerName     string         `json:"customer_name"`
	Email            string         `json:"email"`
	DurationDays     int32          `json:"duration_days"`
	TotalAmountPaise int64          `json:"total_amount_paise"`
}

// BookingConfirmation is the terminal summary produced once the mock payment
// completes. The payment id is random and mock-only: it is neither unique nor
// cryptographically meaningful.
type BookingConfirmation struct {
	PaymentID        string `json:"payment_id"`
	ItemTitle        string `json:"item_title"`
	DurationDays     int32  `json:"duration_days"`
	TotalAmountPaise int64  `json:"total_amount_paise"`
	ConfirmedOn      string `json:"confirmed_on"`
}
