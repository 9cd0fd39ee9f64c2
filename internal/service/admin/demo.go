package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/repo"
	entcs "github.com/internlink/internlink_backend/internal/repo/collegestudent"
	entintern "github.com/internlink/internlink_backend/internal/repo/internship"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
	"github.com/internlink/internlink_backend/pkg/authorize"
	"github.com/internlink/internlink_backend/pkg/database"
	"github.com/internlink/internlink_backend/pkg/util/password"
)

// Demo accounts live under a reserved domain so they can be swept out
// without touching real data.
const demoEmailDomain = "demo.internlink.local"

const demoPassword = "demo-password-1"

func demoEmail(local string) string {
	return local + "@" + demoEmailDomain
}

// ImportDemoData seeds a small consistent data set for demos and local
// development. Running it twice is a no-op.
func (s *adminService) ImportDemoData(ctx context.Context) error {
	exists, err := s.db.User.Query().
		Where(entuser.EmailHasSuffix("@" + demoEmailDomain)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check demo data: %w", err)
	}
	if exists {
		slog.Info("demo data already imported, skipping")
		return nil
	}

	passHash, err := password.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var createdIDs []uuid.UUID

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		newUser := func(local string, t entuser.UserType) (*repo.User, error) {
			u, err := tx.User.Create().
				SetEmail(demoEmail(local)).
				SetPasswordHash(passHash).
				SetUserType(t).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("create demo user %s: %w", local, err)
			}
			createdIDs = append(createdIDs, u.ID)
			return u, nil
		}

		// Students
		alice, err := newUser("alice", entuser.UserTypeStudent)
		if err != nil {
			return err
		}
		bob, err := newUser("bob", entuser.UserTypeStudent)
		if err != nil {
			return err
		}
		if _, err := tx.StudentProfile.Create().
			SetUserID(alice.ID).
			SetFirstName("Alice").
			SetLastName("Iyer").
			SetCollege("Demo Institute of Technology").
			SetDegree("B.Tech").
			SetBranch("Computer Science").
			SetGraduationYear(2027).
			SetSkills("Go, SQL, Docker").
			Save(ctx); err != nil {
			return fmt.Errorf("create demo student profile: %w", err)
		}
		if _, err := tx.StudentProfile.Create().
			SetUserID(bob.ID).
			SetFirstName("Bob").
			SetLastName("Nair").
			SetCollege("Demo Institute of Technology").
			SetDegree("B.Tech").
			SetBranch("Electronics").
			SetGraduationYear(2026).
			SetSkills("Python, Embedded C").
			Save(ctx); err != nil {
			return fmt.Errorf("create demo student profile: %w", err)
		}

		// Companies, one approved and one pending
		acme, err := newUser("acme", entuser.UserTypeCompany)
		if err != nil {
			return err
		}
		if _, err := tx.CompanyProfile.Create().
			SetUserID(acme.ID).
			SetCompanyName("Acme Cloud").
			SetIndustry("Software").
			SetLocation("Bengaluru").
			SetApproved(true).
			SetApprovedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("create demo company profile: %w", err)
		}
		pendingCo, err := newUser("pendingco", entuser.UserTypeCompany)
		if err != nil {
			return err
		}
		if _, err := tx.CompanyProfile.Create().
			SetUserID(pendingCo.ID).
			SetCompanyName("Pending Widgets").
			SetIndustry("Manufacturing").
			SetLocation("Pune").
			Save(ctx); err != nil {
			return fmt.Errorf("create demo company profile: %w", err)
		}

		// College with the students on its roster
		dit, err := newUser("dit", entuser.UserTypeCollege)
		if err != nil {
			return err
		}
		if _, err := tx.CollegeProfile.Create().
			SetUserID(dit.ID).
			SetCollegeName("Demo Institute of Technology").
			SetLocation("Chennai").
			Save(ctx); err != nil {
			return fmt.Errorf("create demo college profile: %w", err)
		}
		if _, err := tx.CollegeStudent.Create().
			SetCollegeID(dit.ID).
			SetStudentID(alice.ID).
			SetVerificationStatus(entcs.VerificationStatusVerified).
			SetVerifiedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("create demo roster entry: %w", err)
		}
		if _, err := tx.CollegeStudent.Create().
			SetCollegeID(dit.ID).
			SetStudentID(bob.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("create demo roster entry: %w", err)
		}

		// Internships and applications
		backend, err := tx.Internship.Create().
			SetCompanyID(acme.ID).
			SetTitle("Backend Engineering Intern").
			SetDescription("Work on Go services behind the Acme Cloud API.").
			SetLocation("Bengaluru").
			SetWorkMode(entintern.WorkModeHybrid).
			SetDuration("6 months").
			SetStipend("30000 INR/month").
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create demo internship: %w", err)
		}
		if _, err := tx.Internship.Create().
			SetCompanyID(acme.ID).
			SetTitle("Data Intern (closed)").
			SetWorkMode(entintern.WorkModeRemote).
			SetStatus(entintern.StatusClosed).
			Save(ctx); err != nil {
			return fmt.Errorf("create demo internship: %w", err)
		}

		if _, err := tx.Application.Create().
			SetStudentID(alice.ID).
			SetInternshipID(backend.ID).
			SetAppliedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("create demo application: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Grants happen outside the tx; Casbin rows are not part of it anyway.
	for _, id := range createdIDs {
		if err := authorize.AssignUserSelfRole(ctx, s.auth, id.String()); err != nil {
			slog.Warn("assign demo self role failed", "user_id", id, "error", err)
		}
	}
	s.assignDemoPortalRoles(ctx)

	s.events.DemoImported()
	s.events.StatsUpdated()
	return nil
}

func (s *adminService) assignDemoPortalRoles(ctx context.Context) {
	users, err := s.db.User.Query().
		Where(entuser.EmailHasSuffix("@" + demoEmailDomain)).
		All(ctx)
	if err != nil {
		slog.Warn("load demo users for role assignment failed", "error", err)
		return
	}
	for _, u := range users {
		if err := authorize.AssignPortalRole(ctx, s.auth, u.ID.String(), string(u.UserType)); err != nil {
			slog.Warn("assign demo portal role failed", "user_id", u.ID, "error", err)
		}
	}
}

// DeleteDemoData removes every demo account and all rows cascading from
// them, using the same cascade as user deletion.
func (s *adminService) DeleteDemoData(ctx context.Context) error {
	users, err := s.db.User.Query().
		Where(entuser.EmailHasSuffix("@" + demoEmailDomain)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load demo users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		for _, u := range users {
			if err := deleteUserCascade(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, u := range users {
		if err := authorize.RemovePortalRole(ctx, s.auth, u.ID.String(), string(u.UserType)); err != nil {
			slog.Warn("remove demo portal roles failed", "user_id", u.ID, "error", err)
		}
	}

	s.events.DemoDeleted()
	s.events.StatsUpdated()
	return nil
}
