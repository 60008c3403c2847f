package models

// Doctor is a directory entry. Rows are only written by the seed endpoint.
type Doctor struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Experience      int     `json:"experience"`
	Rating          float64 `json:"rating"`
	ConsultationFee int     `json:"consultation_fee"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
}
