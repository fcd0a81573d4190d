// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package broker

import (
	"context"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/acctl/acctl/internal/log"
)

// DefaultTimeout bounds a single STS round trip.
const DefaultTimeout = 30 * time.Second

// STSAPI is the slice of the STS client the broker uses. The AWS client
// satisfies it; tests substitute a stub.
type STSAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Credentials is one temporary credential tuple from a role assumption.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

// ProfileLines renders the tuple as credential store lines, ready for a
// profile block.
func (c Credentials) ProfileLines() []string {
	return []string{
		"aws_access_key_id = " + c.AccessKeyID,
		"aws_secret_access_key = " + c.SecretAccessKey,
		"aws_session_token = " + c.SessionToken,
	}
}

// String masks the secret half of the tuple so credentials can never leak
// through logging or %v formatting.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{AccessKeyID: %s, SecretAccessKey: <redacted>, SessionToken: <redacted>, Expiration: %s}",
		c.AccessKeyID, c.Expiration.Format(time.RFC3339))
}

// Identity is the caller's resolved STS identity.
type Identity struct {
	Account string `json:"account"`
	Arn     string `json:"arn"`
	UserID  string `json:"user_id"`
}

// Client wraps an STS API with per-call timeouts and error mapping.
type Client struct {
	api     STSAPI
	timeout time.Duration
}

// New returns a broker Client over api. A non-positive timeout selects
// DefaultTimeout.
func New(api STSAPI, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{api: api, timeout: timeout}
}

// AssumeRole requests temporary credentials for roleArn under sessionName.
// A zero duration leaves the service default in place.
func (c *Client) AssumeRole(ctx context.Context, roleArn, sessionName string, duration time.Duration) (Credentials, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	in := &sts.AssumeRoleInput{
		RoleArn:         awsv2.String(roleArn),
		RoleSessionName: awsv2.String(sessionName),
	}
	if duration > 0 {
		in.DurationSeconds = awsv2.Int32(int32(duration / time.Second))
	}
	log.Debugf("AssumeRole: role=%s, session=%s", roleArn, sessionName)

	out, err := c.api.AssumeRole(ctx, in)
	if err != nil {
		return Credentials{}, classify("assume role", err)
	}
	if out.Credentials == nil {
		return Credentials{}, &Error{Op: "assume role", Code: "EmptyResponse", Message: "no credentials in response"}
	}

	creds := Credentials{
		AccessKeyID:     awsv2.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: awsv2.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    awsv2.ToString(out.Credentials.SessionToken),
		Expiration:      awsv2.ToTime(out.Credentials.Expiration),
	}
	log.Debugf("AssumeRole ok: %s", creds)

	return creds, nil
}

// CallerIdentity resolves who the current credential chain authenticates
// as.
func (c *Client) CallerIdentity(ctx context.Context) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, classify("get caller identity", err)
	}

	id := Identity{
		Account: awsv2.ToString(out.Account),
		Arn:     awsv2.ToString(out.Arn),
		UserID:  awsv2.ToString(out.UserId),
	}
	log.Debugf("CallerIdentity ok: account=%s, arn=%s", id.Account, id.Arn)

	return id, nil
}
