package serverutils

// Response is the uniform JSON envelope for every tool endpoint. Message is
// the natural-language-ready string handed back to the voice orchestration
// layer; Data carries the structured state for display collaborators.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) Response[any] {
	return Response[any]{
		Success: false,
		Message: message,
	}
}
