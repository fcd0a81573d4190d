// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package assume

import (
	"context"
	"errors"
	"time"

	"github.com/acctl/acctl/internal/audit"
	"github.com/acctl/acctl/internal/broker"
	"github.com/acctl/acctl/internal/log"
	"github.com/acctl/acctl/internal/registry"
	"github.com/acctl/acctl/internal/store"
)

// RoleBroker is the STS exchange the orchestrator depends on.
type RoleBroker interface {
	AssumeRole(ctx context.Context, roleArn, sessionName string, duration time.Duration) (broker.Credentials, error)
}

// ProfileStore installs a credential profile.
type ProfileStore interface {
	Update(profile string, lines []string) (store.Result, error)
}

// AccessLog records attempts on the audit trail.
type AccessLog interface {
	Append(r audit.Record)
}

// Request is one role-assumption order. Account is required; the rest
// default by convention.
type Request struct {
	Account  string
	Session  string
	Profile  string
	Duration time.Duration
}

// Outcome describes a completed assumption.
type Outcome struct {
	Account     registry.Account
	Session     string
	Profile     string
	Result      store.Result
	Credentials broker.Credentials
}

// Orchestrator runs assumptions against a fixed registry and set of
// collaborators.
type Orchestrator struct {
	reg    *registry.Registry
	broker RoleBroker
	store  ProfileStore
	audit  AccessLog
	now    func() time.Time
}

// New wires an Orchestrator.
func New(reg *registry.Registry, rb RoleBroker, ps ProfileStore, al AccessLog) *Orchestrator {
	return &Orchestrator{reg: reg, broker: rb, store: ps, audit: al, now: time.Now}
}

// DefaultSessionName derives a session name from the wall clock, matching
// the session-YYYYMMDD-HHMMSS convention.
func DefaultSessionName(t time.Time) string {
	return "session-" + t.Format("20060102-150405")
}

// DefaultProfileName is the store profile an account's credentials land
// in unless the caller overrides it.
func DefaultProfileName(account string) string {
	return "assumed-" + account
}

// Run executes one assumption. Registry problems surface before anything
// touches the network and are not audited; once the STS exchange is in
// flight every attempt lands on the audit trail, pass or fail. The store
// write is skipped entirely when the exchange fails.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Outcome, error) {
	account, ok := o.reg.Lookup(req.Account)
	if !ok {
		return nil, &AccountNotFoundError{Name: req.Account, Known: o.reg.Names()}
	}
	if account.RoleArn == "" {
		return nil, &RoleNotConfiguredError{Name: req.Account}
	}

	session := req.Session
	if session == "" {
		session = DefaultSessionName(o.now())
	}
	profile := req.Profile
	if profile == "" {
		profile = DefaultProfileName(account.Name)
	}
	log.Debugf("Assuming role: account=%s, role=%s, session=%s", account.Name, account.RoleArn, session)

	creds, err := o.broker.AssumeRole(ctx, account.RoleArn, session, req.Duration)
	if err != nil {
		o.audit.Append(audit.Record{
			Account: account.Name,
			Session: session,
			Success: false,
			Error:   failureMessage(err),
		})
		return nil, err
	}
	o.audit.Append(audit.Record{Account: account.Name, Session: session, Success: true})

	res, err := o.store.Update(profile, creds.ProfileLines())
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Account:     account,
		Session:     session,
		Profile:     profile,
		Result:      res,
		Credentials: creds,
	}, nil
}

// failureMessage picks the service message for broker errors so the audit
// trail reads like the API response, not a Go error chain.
func failureMessage(err error) string {
	var be *broker.Error
	if errors.As(err, &be) {
		return be.Message
	}

	return err.Error()
}
