package session

// Tab identifies which controller/presenter is currently visible.
type Tab int

const (
	TabUpload Tab = iota
	TabDownload
	TabShare
)

// String returns the tab name.
func (t Tab) String() string {
	switch t {
	case TabUpload:
		return "upload"
	case TabDownload:
		return "download"
	case TabShare:
		return "share"
	}
	return "unknown"
}

// Coordinator owns the current transfer identifier and the active tab.
//
// The identifier is the only process-wide shared value; it is mutated
// exclusively through IdentifierProduced. It lives in memory for the
// duration of the session and is never persisted.
type Coordinator struct {
	identifier string
	active     Tab
}

// NewCoordinator creates a coordinator with no identifier, showing the
// upload tab.
func NewCoordinator() *Coordinator {
	return &Coordinator{active: TabUpload}
}

// IdentifierProduced records a settle/reset outcome from the upload
// controller. A non-empty identifier forces the active tab to the share
// view. An empty identifier (reset) clears the stored value but leaves the
// tab wherever the user has navigated.
func (c *Coordinator) IdentifierProduced(id string) {
	if id == "" {
		c.identifier = ""
		return
	}
	c.identifier = id
	c.active = TabShare
}

// SelectTab switches the visible tab. Always permitted; overrides automatic
// selection until the next produced identifier.
func (c *Coordinator) SelectTab(t Tab) {
	c.active = t
}

// Identifier returns the current identifier, or "" when none is active.
func (c *Coordinator) Identifier() string {
	return c.identifier
}

// ActiveTab returns the currently visible tab.
func (c *Coordinator) ActiveTab() Tab {
	return c.active
}
