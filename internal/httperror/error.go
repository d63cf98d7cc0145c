// Package httperror provides the error body all endpoints respond with.
package httperror

type Error struct {
	Message string `json:"error" example:"there is no budget matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
