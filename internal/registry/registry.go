// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/acctl/acctl/internal/log"
)

// DefaultName is the registry file looked for when no path is configured.
const DefaultName = "accounts.json"

// Account is one registry entry. Name is the unique key users type on the
// command line. AccountID is the 12-digit AWS account number. RoleArn is
// the role to assume in that account and may be absent for accounts that
// are listed but not assumable.
type Account struct {
	Name        string `json:"name"`
	AccountID   string `json:"account_id"`
	RoleArn     string `json:"role_arn,omitempty"`
	Description string `json:"description,omitempty"`
}

// Registry is the validated account list. Immutable once loaded; commands
// read it, nothing writes it back.
type Registry struct {
	Accounts []Account `json:"accounts"`
}

// ConfigError reports an unusable registry. It is fatal: no credential
// operation may proceed without validated account data.
type ConfigError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("account registry %s: %s", e.Path, e.Msg)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads and validates the registry at path. A missing file is seeded
// with a starter registry first, so a fresh install always has something
// to edit. Any structural problem is a *ConfigError.
func Load(path string) (*Registry, error) {
	if path == "" {
		path = DefaultName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteDefault(path); err != nil {
			return nil, &ConfigError{Path: path, Msg: "cannot create default registry", Err: err}
		}
		log.Infof("Created default registry at %s. Edit it to add your accounts and roles.", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Msg: "cannot read registry", Err: err}
	}

	// Pointer field distinguishes a missing accounts key from an empty list.
	var parsed struct {
		Accounts *[]Account `json:"accounts"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ConfigError{Path: path, Msg: "invalid JSON", Err: err}
	}
	if parsed.Accounts == nil {
		return nil, &ConfigError{Path: path, Msg: "missing required key 'accounts'"}
	}

	r := &Registry{Accounts: *parsed.Accounts}
	if err := r.validate(path); err != nil {
		return nil, err
	}
	log.Debugf("Registry loaded: path=%s, accounts=%d", path, len(r.Accounts))

	return r, nil
}

func (r *Registry) validate(path string) error {
	for i, a := range r.Accounts {
		if a.Name == "" {
			return &ConfigError{Path: path, Msg: fmt.Sprintf("account at index %d is missing 'name'", i)}
		}
		if a.AccountID == "" {
			return &ConfigError{Path: path, Msg: fmt.Sprintf("account %q is missing 'account_id'", a.Name)}
		}
		if !validAccountID(a.AccountID) {
			return &ConfigError{
				Path: path,
				Msg:  fmt.Sprintf("account %q has invalid account_id %q, want exactly 12 digits", a.Name, a.AccountID),
			}
		}
	}

	return nil
}

// validAccountID reports whether id is exactly 12 ASCII digits.
func validAccountID(id string) bool {
	if len(id) != 12 {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// Lookup returns the account entry for name.
func (r *Registry) Lookup(name string) (Account, bool) {
	for _, a := range r.Accounts {
		if a.Name == name {
			return a, true
		}
	}

	return Account{}, false
}

// Names returns account names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		names = append(names, a.Name)
	}

	return names
}

// WriteDefault writes a starter registry with placeholder account IDs to
// path. Never overwrites an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("registry %s already exists", path)
	}

	starter := Registry{Accounts: []Account{
		{
			Name:        "main",
			AccountID:   "111111111111",
			Description: "Main AWS Account",
		},
		{
			Name:        "dev",
			AccountID:   "222222222222",
			RoleArn:     "arn:aws:iam::222222222222:role/CrossAccountAdminRole",
			Description: "Development Account",
		},
	}}

	data, err := json.MarshalIndent(starter, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
