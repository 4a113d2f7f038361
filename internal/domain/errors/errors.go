package errors

import (
	"net/http"

	"reliefmap/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches errors by business code, so a WithDetails copy still compares
// equal to its predefined base under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Vietnamese, matching the
// language of the map this service backs.
var (
	// Validation errors
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dữ liệu không hợp lệ",
		"",
	)

	ErrAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REQUIRED",
		"Vui lòng điền địa chỉ",
		"",
	)

	ErrCoordinatesRequired = NewBaseError(
		http.StatusBadRequest,
		"COORDINATES_REQUIRED",
		"Vui lòng cung cấp tọa độ hợp lệ",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Bán kính tìm kiếm phải từ 5 đến 100 km, theo bước 5 km",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Trạng thái không hợp lệ",
		"",
	)

	ErrInvalidPointType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_POINT_TYPE",
		"Loại điểm cứu trợ không hợp lệ",
		"",
	)

	// Lookup errors
	ErrPointNotFound = NewBaseError(
		http.StatusNotFound,
		"POINT_NOT_FOUND",
		"Không tìm thấy điểm cứu trợ",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Không tìm thấy tài khoản quản trị",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Vui lòng đăng nhập",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email hoặc mật khẩu không đúng",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Bạn không có quyền thực hiện thao tác này",
		"",
	)

	ErrDeleteRequiresAdmin = NewBaseError(
		http.StatusForbidden,
		"DELETE_REQUIRES_ADMIN",
		"Chỉ quản trị viên mới được xóa điểm cứu trợ",
		"",
	)

	// Backend availability. Never downgraded to a default role or default
	// data; callers retry manually.
	ErrBackendUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"BACKEND_UNAVAILABLE",
		"Hệ thống đang gặp sự cố, vui lòng thử lại",
		"",
	)

	// Geolocation errors. One distinct message per failure mode so the caller
	// can render targeted guidance.
	ErrGeoPermissionDenied = NewBaseError(
		http.StatusBadRequest,
		"GEO_PERMISSION_DENIED",
		"Bạn đã từ chối chia sẻ vị trí. Hãy bật quyền vị trí trong trình duyệt để tìm điểm cứu trợ gần bạn",
		"",
	)

	ErrGeoUnavailable = NewBaseError(
		http.StatusBadRequest,
		"GEO_UNAVAILABLE",
		"Không xác định được vị trí của bạn. Hãy kiểm tra GPS hoặc kết nối mạng",
		"",
	)

	ErrGeoTimeout = NewBaseError(
		http.StatusBadRequest,
		"GEO_TIMEOUT",
		"Lấy vị trí quá lâu, vui lòng thử lại",
		"",
	)

	// General errors
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Dữ liệu bị xung đột",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Lỗi hệ thống",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Thao tác với cơ sở dữ liệu thất bại"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
