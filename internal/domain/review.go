package domain

// Review is one piece of customer feedback. Rating is always within [1,5].
// Reviews are appended to the front of the persisted list and never mutated
// or deleted afterwards.
type Review struct {
	Name    string `json:"name"`
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}
