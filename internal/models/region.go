package models

// Region - административный район, к которому привязан отчет
type Region struct {
	Code     string `json:"code"`
	City     string `json:"city"`
	District string `json:"district"`
}
