package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zx06/pw/internal/clipboard"
	"github.com/zx06/pw/internal/credential"
	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/log"
	"github.com/zx06/pw/internal/secret"
)

// Store is the part of the credential store the commands use.
type Store interface {
	Exists(ctx context.Context, name string) (bool, *errors.XError)
	Insert(ctx context.Context, c credential.Credential) (credential.Credential, *errors.XError)
	GetByName(ctx context.Context, name string) (credential.Credential, *errors.XError)
	List(ctx context.Context, f credential.Filter) ([]credential.Entry, *errors.XError)
}

// Input is the interactive line source.
type Input interface {
	ReadLine(prompt string) (string, *errors.XError)
	ReadSecret(prompt string) (string, *errors.XError)
}

type Deps struct {
	Store     Store
	Input     Input
	Clipboard clipboard.Sink
	Notices   io.Writer         // progress messages printed before prompting
	Keyring   secret.KeyringAPI // nil uses the OS keyring
	Logger    *slog.Logger
}

// Vault runs one credential command per call against its store.
type Vault struct {
	store   Store
	input   Input
	clip    clipboard.Sink
	notices io.Writer
	keyring secret.KeyringAPI
	logger  *slog.Logger
}

func NewVault(d Deps) *Vault {
	v := &Vault{
		store:   d.Store,
		input:   d.Input,
		clip:    d.Clipboard,
		notices: d.Notices,
		keyring: d.Keyring,
		logger:  d.Logger,
	}
	if v.notices == nil {
		v.notices = io.Discard
	}
	if v.logger == nil {
		v.logger = log.Discard()
	}
	return v
}

// New creates a credential named name from a prompted username and
// password. The typed password is stored exactly as entered. A taken name is
// not an error: the result reports NewExists and nothing is prompted or written.
func (v *Vault) New(ctx context.Context, category, name string) (NewResult, *errors.XError) {
	return v.create(ctx, category, name, nil)
}

// NewFromKeyring is New with the password read from the OS keyring entry ref
// instead of prompted.
func (v *Vault) NewFromKeyring(ctx context.Context, category, name string, ref secret.Ref) (NewResult, *errors.XError) {
	return v.create(ctx, category, name, &ref)
}

func (v *Vault) create(ctx context.Context, category, name string, ref *secret.Ref) (NewResult, *errors.XError) {
	if name == "" {
		return NewResult{}, errors.New(errors.CodeCfgInvalid, "credential name is required", nil)
	}

	taken, xe := v.store.Exists(ctx, name)
	if xe != nil {
		return NewResult{}, xe
	}
	if taken {
		v.logger.Debug("credential name taken", "name", name)
		return NewResult{Status: NewExists, Name: name, Category: category}, nil
	}

	notice := fmt.Sprintf("Creating new credentials named \"%s\"", name)
	if category != "" {
		notice += fmt.Sprintf(" in category \"%s\"", category)
	}
	fmt.Fprintln(v.notices, notice)

	username, xe := v.input.ReadLine("Username: ")
	if xe != nil {
		return NewResult{}, xe
	}

	var password string
	if ref != nil {
		v.logger.Debug("reading password from keyring", "ref", ref.String())
		password, xe = secret.Lookup(*ref, secret.Options{Keyring: v.keyring})
	} else {
		password, xe = v.input.ReadSecret("Password: ")
	}
	if xe != nil {
		return NewResult{}, xe
	}

	c, xe := v.store.Insert(ctx, credential.Credential{
		Name:     name,
		Category: category,
		Username: username,
		Password: password,
	})
	if xe != nil {
		return NewResult{}, xe
	}
	return NewResult{Status: NewCreated, ID: c.ID, Name: c.Name, Category: c.Category}, nil
}

// List returns credentials matching f in category, then name order.
func (v *Vault) List(ctx context.Context, f credential.Filter) (Listing, *errors.XError) {
	entries, xe := v.store.List(ctx, f)
	if xe != nil {
		return Listing{}, xe
	}
	return Listing{Entries: entries}, nil
}

// Show returns the full credential named name, or PW_NOT_FOUND.
func (v *Vault) Show(ctx context.Context, name string) (credential.Credential, *errors.XError) {
	return v.store.GetByName(ctx, name)
}

// Copy puts the selected field of the credential named name on the clipboard.
func (v *Vault) Copy(ctx context.Context, name string, field credential.Field) (CopyResult, *errors.XError) {
	c, xe := v.store.GetByName(ctx, name)
	if xe != nil {
		return CopyResult{}, xe
	}
	if xe := v.clip.SetContents(field.Value(c)); xe != nil {
		return CopyResult{}, xe
	}
	v.logger.Debug("copied credential field", "name", c.Name, "field", string(field))
	return CopyResult{Name: c.Name, Field: field}, nil
}

// Unsupported answers commands without behavior. It never touches the store.
func (v *Vault) Unsupported(command string) UnsupportedResult {
	return UnsupportedResult{Command: command, Status: "not_implemented"}
}
