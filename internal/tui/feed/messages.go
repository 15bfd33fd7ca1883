package feed

import "time"

// FrameMsg drives the refresh queue; one task batch runs per frame.
type FrameMsg time.Time

// PageLoadedMsg carries a loaded page. Page 0 replaces the feed and starts a
// new generation; later pages append to the generation that requested them.
type PageLoadedMsg struct {
	Generation int
	Page       int
	Items      []string
}
