package response

import "decor-rental/internal/infra/backup"

type MessageResponse struct {
	Message string `json:"message"`
}

type RestoreResponse struct {
	Message string        `json:"message"`
	Counts  backup.Counts `json:"counts"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func NewListResponse[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Total: len(data)}
}
