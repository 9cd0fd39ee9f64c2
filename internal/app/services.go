package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/internlink/internlink_backend/config"
	"github.com/internlink/internlink_backend/internal/events"
	"github.com/internlink/internlink_backend/internal/repo"
	"github.com/internlink/internlink_backend/internal/service/admin"
	"github.com/internlink/internlink_backend/internal/service/application"
	"github.com/internlink/internlink_backend/internal/service/auth"
	"github.com/internlink/internlink_backend/internal/service/college"
	"github.com/internlink/internlink_backend/internal/service/company"
	svcfile "github.com/internlink/internlink_backend/internal/service/file"
	"github.com/internlink/internlink_backend/internal/service/internship"
	"github.com/internlink/internlink_backend/internal/service/notification"
	"github.com/internlink/internlink_backend/internal/service/student"
	"github.com/internlink/internlink_backend/pkg/authorize"
	"github.com/internlink/internlink_backend/pkg/email"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
	s3pkg "github.com/internlink/internlink_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideStudentService,
		ProvideCompanyService,
		ProvideCollegeService,
		ProvideInternshipService,
		ProvideApplicationService,
		ProvideAdminService,
		ProvideNotificationService,
		ProvideFileService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mail, paseto, authz, cfg)
}

func ProvideStudentService(db *repo.Client) student.Service {
	return student.New(db)
}

func ProvideCompanyService(db *repo.Client) company.Service {
	return company.New(db)
}

func ProvideCollegeService(db *repo.Client) college.Service {
	return college.New(db)
}

func ProvideInternshipService(db *repo.Client) internship.Service {
	return internship.New(db)
}

func ProvideApplicationService(db *repo.Client, mail *email.Client, pub *events.Publisher) application.Service {
	return application.New(db, mail, pub)
}

func ProvideAdminService(
	db *repo.Client,
	mail *email.Client,
	pub *events.Publisher,
	authz authorize.IAuthorization,
	cfg *config.Config,
) admin.Service {
	return admin.New(db, mail, pub, authz, cfg)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideFileService(db *repo.Client, s3 *s3pkg.Client) svcfile.Service {
	return svcfile.New(db, s3)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
