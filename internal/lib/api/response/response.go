package response

type ErrResponse struct {
	Error string `json:"error"`
}

func Error(msg string) ErrResponse {
	return ErrResponse{Error: msg}
}
