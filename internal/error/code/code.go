package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrForbidden - 403: 权限不足.
	ErrForbidden
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
	// ErrEmailNotVerified - 403: 邮箱未验证.
	ErrEmailNotVerified
	// ErrVerificationTokenInvalid - 400: 邮箱验证令牌无效.
	ErrVerificationTokenInvalid
)

// 报告相关错误码 (102xxx).
const (
	// ErrReportInvalidLocation - 400: 坐标无效.
	ErrReportInvalidLocation int = iota + 102000
	// ErrReportMissingDescription - 400: 缺少描述.
	ErrReportMissingDescription
	// ErrReportMissingCaptcha - 400: 缺少人机验证令牌.
	ErrReportMissingCaptcha
	// ErrReportInvalidPhotoURL - 400: 图片地址无效.
	ErrReportInvalidPhotoURL
	// ErrReportNotFound - 404: 报告不存在.
	ErrReportNotFound
	// ErrReportRateLimited - 429: IP提交频率超限.
	ErrReportRateLimited
	// ErrReportRateLimitedDevice - 429: 设备提交频率超限.
	ErrReportRateLimitedDevice
)

// 合作申请相关错误码 (103xxx).
const (
	// ErrApplicationNotFound - 404: 申请不存在.
	ErrApplicationNotFound int = iota + 103000
	// ErrApplicationAlreadyExist - 400: 申请已存在.
	ErrApplicationAlreadyExist
	// ErrApplicationInvalidStatus - 400: 申请状态值无效.
	ErrApplicationInvalidStatus
)

// 人机验证相关错误码 (104xxx).
const (
	// ErrCaptchaFailed - 400: 人机验证失败.
	ErrCaptchaFailed int = iota + 104000
	// ErrCaptchaService - 500: 人机验证服务不可用.
	ErrCaptchaService
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)

// 上传相关错误码 (106xxx).
const (
	// ErrUploadMissingFile - 400: 缺少上传文件.
	ErrUploadMissingFile int = iota + 106000
	// ErrUploadNotImage - 400: 上传的不是图片文件.
	ErrUploadNotImage
	// ErrUploadFailed - 500: 保存上传文件失败.
	ErrUploadFailed
)
