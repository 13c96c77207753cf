package ports

import "context"

// ScreenClearer wipes the terminal before each frame is drawn. The engine
// waits for Clear to return before rendering; implementations must block
// until the clear has completed, or stale output can interleave with the
// next frame.
type ScreenClearer interface {
	Clear(ctx context.Context) error
}
