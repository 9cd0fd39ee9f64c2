package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/internlink/internlink_backend/internal/events"
	"github.com/internlink/internlink_backend/internal/repo"
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	entintern "github.com/internlink/internlink_backend/internal/repo/internship"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
	"github.com/internlink/internlink_backend/internal/service/notification"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			startStatsWorker(p.NC)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// lastSubjectID extracts the trailing uuid token of a subject like
// "internlink.application.submitted.<id>".
func lastSubjectID(subject string) (uuid.UUID, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) < 4 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(parts[len(parts)-1])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	// Company approval decisions
	_, err := nc.Subscribe(events.SubjectCompanyApproved+".*", func(msg *nats.Msg) {
		companyUserID, ok := lastSubjectID(msg.Subject)
		if !ok {
			return
		}

		ctx := context.Background()
		_, err := notifSvc.Create(ctx, notification.CreateRequest{
			UserID: companyUserID,
			Type:   "company_approved",
			Title:  "Your company has been approved",
			Data:   map[string]any{"company_user_id": companyUserID.String()},
		})
		if err != nil {
			slog.Warn("notification_worker: create approval notification failed", "err", err)
		}

		// Portal admins see approval decisions in their own feed too.
		admins, err := db.User.Query().
			Where(entuser.UserTypeEQ(entuser.UserTypeAdmin)).
			All(ctx)
		if err != nil {
			slog.Warn("notification_worker: list admins failed", "err", err)
			return
		}
		for _, a := range admins {
			_, err := notifSvc.Create(ctx, notification.CreateRequest{
				UserID: a.ID,
				Type:   "company_approved",
				Title:  "A company was approved",
				Data:   map[string]any{"company_user_id": companyUserID.String()},
			})
			if err != nil {
				slog.Warn("notification_worker: create admin notification failed", "err", err)
			}
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe company.approved failed", "err", err)
	}

	// New applications, delivered to the posting company
	_, err = nc.Subscribe(events.SubjectApplicationSubmitted+".*", func(msg *nats.Msg) {
		internshipID, ok := lastSubjectID(msg.Subject)
		if !ok {
			return
		}

		appIDStr := strings.TrimSpace(string(msg.Data))
		if _, err := uuid.Parse(appIDStr); err != nil {
			return
		}

		ctx := context.Background()

		in, err := db.Internship.Query().
			Where(entintern.ID(internshipID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: internship not found", "id", internshipID.String(), "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: in.CompanyID,
			Type:   "application_submitted",
			Title:  "New application for " + in.Title,
			Data: map[string]any{
				"internship_id":  in.ID.String(),
				"application_id": appIDStr,
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create application notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe application.submitted failed", "err", err)
	}

	// Status changes, delivered to the applicant
	_, err = nc.Subscribe(events.SubjectApplicationStatus+".*", func(msg *nats.Msg) {
		studentUserID, ok := lastSubjectID(msg.Subject)
		if !ok {
			return
		}

		appIDStr := strings.TrimSpace(string(msg.Data))
		appID, err := uuid.Parse(appIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		app, err := db.Application.Query().
			Where(entapp.ID(appID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: application not found", "id", appIDStr, "err", err)
			return
		}

		in, err := db.Internship.Query().
			Where(entintern.ID(app.InternshipID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: internship not found", "id", app.InternshipID.String(), "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: studentUserID,
			Type:   "application_status",
			Title:  "Your application for " + in.Title + " is now " + string(app.Status),
			Data: map[string]any{
				"application_id": app.ID.String(),
				"internship_id":  in.ID.String(),
				"status":         string(app.Status),
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create status notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe application.status failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

// ---------------------------------------------------------------------------
// stats_worker
// ---------------------------------------------------------------------------

// startStatsWorker logs dashboard refresh events. Dashboards poll the stats
// endpoint; the subjects exist so future consumers can react without a code
// change here.
func startStatsWorker(nc *nats.Conn) {
	for _, subject := range []string{
		events.SubjectStatsUpdated,
		events.SubjectDemoImported,
		events.SubjectDemoDeleted,
	} {
		subject := subject
		if _, err := nc.Subscribe(subject, func(msg *nats.Msg) {
			slog.Debug("stats_worker: event", "subject", msg.Subject)
		}); err != nil {
			slog.Error("stats_worker: subscribe failed", "subject", subject, "err", err)
		}
	}

	slog.Info("stats_worker: started")
}
