package ports

import "context"

// PasswordHasher is the credential collaborator. It is used only when an
// account is registered or changes its password.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
}
