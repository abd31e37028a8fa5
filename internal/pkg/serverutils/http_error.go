package serverutils

// HttpError carries a status code out of the service layer so the error
// middleware can answer with something better than 500.
type HttpError struct {
	Code    int
	Message string
}

func (e *HttpError) Error() string {
	return e.Message
}

func NewHttpError(code int, message string) *HttpError {
	return &HttpError{Code: code, Message: message}
}
