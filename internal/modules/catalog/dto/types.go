package dto

type TaskOutput struct {
	Name  string
	Price float64
}
