package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"pawsconnect-http-service/internal/domain/models"
)

// 库里的历史脏状态在查询自己的申请时也要归一化后再返回
func TestGetOwnApplicationNormalizesStatus(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "status"}).
		AddRow(3, 7, "  Pending ")
	mock.ExpectQuery("SELECT (.+) FROM `partner_applications`").
		WillReturnRows(rows)

	s := &ApplicationService{DB: db}
	application, err := s.GetOwnApplication(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if application.Status != models.ApplicationStatusPending {
		t.Errorf("status = %q, want %q", application.Status, models.ApplicationStatusPending)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSortApplicationsByNewest(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	apps := []models.PartnerApplication{
		{ID: 1, CreatedAt: base},
		{ID: 2}, // 零值时间
		{ID: 3, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 4, CreatedAt: base.Add(24 * time.Hour)},
	}

	SortApplicationsByNewest(apps)

	wantOrder := []uint{3, 4, 1, 2}
	for i, want := range wantOrder {
		if apps[i].ID != want {
			t.Fatalf("position %d: got ID %d, want %d (order %v)", i, apps[i].ID, want, apps)
		}
	}
}

func TestSortApplicationsByNewestAllZero(t *testing.T) {
	apps := []models.PartnerApplication{{ID: 1}, {ID: 2}, {ID: 3}}
	SortApplicationsByNewest(apps)

	// 稳定排序：零值时间之间保持原始顺序
	for i, want := range []uint{1, 2, 3} {
		if apps[i].ID != want {
			t.Fatalf("position %d: got ID %d, want %d", i, apps[i].ID, want)
		}
	}
}

func TestDeriveDashboardState(t *testing.T) {
	app := func(status string) *models.PartnerApplication {
		return &models.PartnerApplication{Status: status}
	}

	tests := []struct {
		name        string
		user        *models.User
		application *models.PartnerApplication
		want        string
	}{
		{"admin wins over everything", &models.User{Role: models.RoleAdmin}, app("approved"), DashboardStateAdminPanel},
		{"admin without application", &models.User{Role: models.RoleAdmin}, nil, DashboardStateAdminPanel},
		{"unverified before application", &models.User{Role: models.RolePartner}, app("approved"), DashboardStateVerificationRequired},
		{"verified no application", &models.User{Role: models.RolePartner, EmailVerified: true}, nil, DashboardStateNoApplication},
		{"pending", &models.User{Role: models.RolePartner, EmailVerified: true}, app("pending"), models.ApplicationStatusPending},
		{"rejected", &models.User{Role: models.RolePartner, EmailVerified: true}, app("rejected"), models.ApplicationStatusRejected},
		{"approved", &models.User{Role: models.RolePartner, EmailVerified: true}, app("approved"), models.ApplicationStatusApproved},
		{"messy stored status normalized", &models.User{Role: models.RolePartner, EmailVerified: true}, app("  Approved "), models.ApplicationStatusApproved},
		{"unknown stored status treated as pending", &models.User{Role: models.RolePartner, EmailVerified: true}, app("archived"), models.ApplicationStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveDashboardState(tt.user, tt.application); got != tt.want {
				t.Errorf("DeriveDashboardState() = %q, want %q", got, tt.want)
			}
		})
	}
}
