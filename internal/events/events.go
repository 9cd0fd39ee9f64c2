// Package events defines the NATS subjects InternLink publishes and a thin
// publisher the services share. Payloads are the entity id as a string; the
// workers re-load whatever they need from the database.
package events

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Subject prefixes. The entity id is the last token of the subject.
const (
	SubjectCompanyApproved      = "internlink.company.approved"
	SubjectCompanyRejected      = "internlink.company.rejected"
	SubjectApplicationSubmitted = "internlink.application.submitted"
	SubjectApplicationStatus    = "internlink.application.status"
	SubjectDemoImported         = "internlink.demo.imported"
	SubjectDemoDeleted          = "internlink.demo.deleted"
	SubjectStatsUpdated         = "internlink.stats.updated"
)

// Publisher publishes portal events on a NATS connection. A nil Publisher
// (or one with a nil connection) drops events, so services never need
// nil-checks around event emission.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

func (p *Publisher) publish(prefix string, id uuid.UUID, payload string) {
	if p == nil || p.nc == nil {
		return
	}
	subject := fmt.Sprintf("%s.%s", prefix, id.String())
	_ = p.nc.Publish(subject, []byte(payload))
}

// CompanyApproved is published when an admin approves a company.
// Payload is the company user id.
func (p *Publisher) CompanyApproved(companyUserID uuid.UUID) {
	p.publish(SubjectCompanyApproved, companyUserID, companyUserID.String())
}

// CompanyRejected is published when an admin rejects a company registration.
func (p *Publisher) CompanyRejected(companyUserID uuid.UUID) {
	p.publish(SubjectCompanyRejected, companyUserID, companyUserID.String())
}

// ApplicationSubmitted is published when a student applies to an internship.
// Subject carries the internship id, payload the application id.
func (p *Publisher) ApplicationSubmitted(internshipID, applicationID uuid.UUID) {
	p.publish(SubjectApplicationSubmitted, internshipID, applicationID.String())
}

// ApplicationStatusChanged is published when a company updates an
// application's status. Subject carries the student id, payload the
// application id.
func (p *Publisher) ApplicationStatusChanged(studentUserID, applicationID uuid.UUID) {
	p.publish(SubjectApplicationStatus, studentUserID, applicationID.String())
}

// DemoImported and DemoDeleted fan out demo-data lifecycle changes to the
// admin dashboard. StatsUpdated tells dashboards to refresh their counters.
func (p *Publisher) DemoImported() { p.bare(SubjectDemoImported) }
func (p *Publisher) DemoDeleted()  { p.bare(SubjectDemoDeleted) }
func (p *Publisher) StatsUpdated() { p.bare(SubjectStatsUpdated) }

func (p *Publisher) bare(subject string) {
	if p == nil || p.nc == nil {
		return
	}
	_ = p.nc.Publish(subject, nil)
}
