package code

// 错误码消息映射
// 面向居民和合作组织的接口返回英文提示，与前端文案保持一致
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "Success",
	ErrUnknown:         "Unexpected server error.",
	ErrBind:            "Invalid request payload.",
	ErrValidation:      "Invalid request parameters.",
	ErrTokenInvalid:    "Invalid or expired token.",
	ErrForbidden:       "Insufficient permissions.",
	ErrTooManyRequests: "Too many requests. Please slow down.",

	// 用户相关错误码
	ErrUserNotFound:             "User not found.",
	ErrUserAlreadyExist:         "An account with this email already exists.",
	ErrUserPasswordIncorrect:    "Incorrect email or password.",
	ErrEmailNotVerified:         "Please verify your email address first.",
	ErrVerificationTokenInvalid: "Invalid verification token.",

	// 报告相关错误码
	ErrReportInvalidLocation:    "Invalid location.",
	ErrReportMissingDescription: "Description is required.",
	ErrReportMissingCaptcha:     "Captcha is required.",
	ErrReportInvalidPhotoURL:    "Invalid image URL.",
	ErrReportNotFound:           "Report not found.",
	ErrReportRateLimited:        "Too many reports. Please wait and try again.",
	ErrReportRateLimitedDevice:  "Too many reports on this device. Please wait and try again.",

	// 合作申请相关错误码
	ErrApplicationNotFound:      "No application found.",
	ErrApplicationAlreadyExist:  "An application already exists for this account.",
	ErrApplicationInvalidStatus: "Status must be pending, approved or rejected.",

	// 人机验证相关错误码
	ErrCaptchaFailed:  "Captcha verification failed.",
	ErrCaptchaService: "Captcha service unavailable.",

	// 数据库相关错误码
	ErrDatabase:       "Database error.",
	ErrRecordNotFound: "Record not found.",

	// 上传相关错误码
	ErrUploadMissingFile: "Image file is required.",
	ErrUploadNotImage:    "Please upload an image file.",
	ErrUploadFailed:      "Failed to store uploaded file.",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrForbidden:       StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:             StatusNotFound,
	ErrUserAlreadyExist:         StatusBadRequest,
	ErrUserPasswordIncorrect:    StatusUnauthorized,
	ErrEmailNotVerified:         StatusForbidden,
	ErrVerificationTokenInvalid: StatusBadRequest,

	// 报告相关错误码
	ErrReportInvalidLocation:    StatusBadRequest,
	ErrReportMissingDescription: StatusBadRequest,
	ErrReportMissingCaptcha:     StatusBadRequest,
	ErrReportInvalidPhotoURL:    StatusBadRequest,
	ErrReportNotFound:           StatusNotFound,
	ErrReportRateLimited:        StatusTooManyRequests,
	ErrReportRateLimitedDevice:  StatusTooManyRequests,

	// 合作申请相关错误码
	ErrApplicationNotFound:      StatusNotFound,
	ErrApplicationAlreadyExist:  StatusBadRequest,
	ErrApplicationInvalidStatus: StatusBadRequest,

	// 人机验证相关错误码
	ErrCaptchaFailed:  StatusBadRequest,
	ErrCaptchaService: StatusInternalServerError,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// 上传相关错误码
	ErrUploadMissingFile: StatusBadRequest,
	ErrUploadNotImage:    StatusBadRequest,
	ErrUploadFailed:      StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(errorCode int) string {
	if message, ok := codeMessageMap[errorCode]; ok {
		return message
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
