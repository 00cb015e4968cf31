package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"pawsconnect-http-service/internal/infrastructure/config"
	"pawsconnect-http-service/pkg/utils"
)

// newMockDB 打开一个由sqlmock驱动的gorm连接
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

// stubRateLimit 记录收到的键并按配置放行或拒绝
type stubRateLimit struct {
	keys  []string
	deny  map[string]bool
	fails bool
}

func (s *stubRateLimit) AllowReport(key string) (bool, error) {
	if s.fails {
		return false, errors.New("counter backend down")
	}
	s.keys = append(s.keys, key)
	return !s.deny[key], nil
}

type stubCaptcha struct {
	pass bool
}

func (s *stubCaptcha) Verify(token, remoteIP string) (bool, error) {
	return s.pass, nil
}

func newTestReportService(rl InterfaceRateLimitService) *ReportService {
	return &ReportService{
		Config:    &config.Config{},
		RateLimit: rl,
		Captcha:   &stubCaptcha{pass: true},
	}
}

func validInput() *SubmitReportInput {
	return &SubmitReportInput{
		Lat:          float64(40.7),
		Lng:          float64(-74.0),
		Urgency:      "medium",
		Description:  "Injured dog near the park entrance",
		CaptchaToken: "tok",
	}
}

func TestSubmitReportValidationOrder(t *testing.T) {
	s := newTestReportService(&stubRateLimit{})

	tests := []struct {
		name    string
		mutate  func(*SubmitReportInput)
		wantErr error
	}{
		{"missing lat", func(in *SubmitReportInput) { in.Lat = nil }, ErrInvalidLocation},
		{"lat as string", func(in *SubmitReportInput) { in.Lat = "40.7" }, ErrInvalidLocation},
		{"lng as bool", func(in *SubmitReportInput) { in.Lng = true }, ErrInvalidLocation},
		{"blank description", func(in *SubmitReportInput) { in.Description = "   " }, ErrMissingDescription},
		{"missing captcha", func(in *SubmitReportInput) { in.CaptchaToken = "" }, ErrMissingCaptcha},
		{"photo url wrong type", func(in *SubmitReportInput) { in.PhotoURL = float64(5) }, ErrInvalidPhotoURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			_, err := s.SubmitReport(in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// 位置校验必须先于描述校验
func TestSubmitReportLocationCheckedFirst(t *testing.T) {
	s := newTestReportService(&stubRateLimit{})

	in := validInput()
	in.Lat = nil
	in.Description = ""

	_, err := s.SubmitReport(in)
	if !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("got %v, want ErrInvalidLocation when both location and description are invalid", err)
	}
}

func TestSubmitReportIPWindowCheckedBeforeDevice(t *testing.T) {
	in := validInput()
	in.ClientIP = "203.0.113.7"
	in.DeviceUID = "device-1"

	ipKey := "ip:" + utils.HashKey(in.ClientIP)
	uidKey := "uid:" + utils.HashKey(in.DeviceUID)

	// 只拒绝设备键，使两个键都被消耗，便于断言顺序
	rl := &stubRateLimit{deny: map[string]bool{uidKey: true}}
	s := newTestReportService(rl)

	_, err := s.SubmitReport(in)
	if !errors.Is(err, ErrDeviceRateLimited) {
		t.Fatalf("got %v, want ErrDeviceRateLimited", err)
	}

	if len(rl.keys) != 2 || rl.keys[0] != ipKey || rl.keys[1] != uidKey {
		t.Fatalf("keys consulted = %v, want [%s %s]", rl.keys, ipKey, uidKey)
	}
	// 键必须是摘要而不是原始值
	if strings.Contains(rl.keys[0], "203.0.113.7") {
		t.Error("rate limit key must not contain the raw IP address")
	}
}

func TestSubmitReportIPRateLimited(t *testing.T) {
	in := validInput()
	in.ClientIP = "203.0.113.7"
	in.DeviceUID = "device-1"

	ipKey := "ip:" + utils.HashKey(in.ClientIP)

	rl := &stubRateLimit{deny: map[string]bool{ipKey: true}}
	s := newTestReportService(rl)

	_, err := s.SubmitReport(in)
	if !errors.Is(err, ErrReportRateLimited) {
		t.Fatalf("got %v, want ErrReportRateLimited", err)
	}

	// IP窗口拒绝后不再消耗设备配额
	if len(rl.keys) != 1 {
		t.Fatalf("keys consulted = %v, device key must not be consumed", rl.keys)
	}
}

func TestSubmitReportRateLimitBackendError(t *testing.T) {
	in := validInput()
	in.ClientIP = "203.0.113.7"

	s := newTestReportService(&stubRateLimit{fails: true})
	if _, err := s.SubmitReport(in); err == nil {
		t.Fatal("expected error when the counter backend is down")
	}
}

func TestSubmitReportCaptchaFailure(t *testing.T) {
	s := newTestReportService(&stubRateLimit{})
	s.Captcha = &stubCaptcha{pass: false}

	_, err := s.SubmitReport(validInput())
	if !errors.Is(err, ErrCaptchaFailed) {
		t.Errorf("got %v, want ErrCaptchaFailed", err)
	}
}

// 坐标和图片地址按提交的值原样入库：不做范围裁剪，也不要求URL格式
func TestSubmitReportStoresValuesAsGiven(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reports`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	s := newTestReportService(&stubRateLimit{})
	s.DB = db

	in := validInput()
	in.Lat = float64(95)
	in.Lng = float64(-200.5)
	in.PhotoURL = "photo"

	report, err := s.SubmitReport(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Lat != 95 || report.Lng != -200.5 {
		t.Errorf("coordinates stored as (%v, %v), want (95, -200.5)", report.Lat, report.Lng)
	}
	if report.PhotoURL == nil || *report.PhotoURL != "photo" {
		t.Errorf("photo url stored as %v, want %q", report.PhotoURL, "photo")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGenerateTicketID(t *testing.T) {
	pattern := regexp.MustCompile(`^PC-\d{5}$`)

	for i := 0; i < 200; i++ {
		id := GenerateTicketID()
		if !pattern.MatchString(id) {
			t.Fatalf("ticket %q does not match PC-NNNNN", id)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, "PC-"))
		if err != nil {
			t.Fatalf("ticket %q has non-numeric suffix", id)
		}
		if n < 10000 || n > 99999 {
			t.Fatalf("ticket number %d out of [10000, 99999]", n)
		}
	}
}

func TestNormalizePhotoURL(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    string // 空串表示期望nil
		wantErr bool
	}{
		{"nil is allowed", nil, "", false},
		{"empty string is allowed", "", "", false},
		{"whitespace collapses to nil", "   ", "", false},
		{"https url", "https://cdn.example.com/p.jpg", "https://cdn.example.com/p.jpg", false},
		{"relative upload path", "/uploads/report_ab.jpg", "/uploads/report_ab.jpg", false},
		{"plain word kept as-is", "photo", "photo", false},
		{"surrounding spaces trimmed", "  photo.jpg ", "photo.jpg", false},
		{"number rejected", float64(1), "", true},
		{"bool rejected", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhotoURL(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhotoURL) {
					t.Errorf("got err %v, want ErrInvalidPhotoURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == "" {
				if got != nil {
					t.Errorf("got %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("got %v, want %q", got, tt.want)
			}
		})
	}
}
