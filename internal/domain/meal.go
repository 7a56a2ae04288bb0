package domain

type MealOption struct {
	ID          int64  `json:"id"`
	Snack       bool   `json:"snack"`
	MealType    string `json:"meal_type"`
	Description string `json:"description"`
	Cost        Money  `json:"cost"`
}
