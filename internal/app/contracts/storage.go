package contracts

import "context"

// AvatarStorage turns the avatar value of a profile into something a browser can load.
type AvatarStorage interface {
	ResolveAvatarURL(ctx context.Context, avatar string) (string, error)
}
