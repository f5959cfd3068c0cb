package a

import "context"

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type FileStore interface {
	Read(ctx context.Context, id string) ([]byte, error)
}

func bad(ctx context.Context, ids []string, ts TokenSource, fs FileStore) {
	for _, id := range ids {
		ts.Token(ctx)    // want "potential N\\+1: Token called inside loop"
		fs.Read(ctx, id) // want "potential N\\+1: Read called inside loop"
	}
}

func good(ctx context.Context, ids []string) {
	// No external calls - should not flag
	for _, id := range ids {
		_ = len(id)
	}
}
