package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLinksLoadStarted EventType = "LinksLoadStarted"
	EventLinksLoaded      EventType = "LinksLoaded"
	EventLinksLoadFailed  EventType = "LinksLoadFailed"
	EventLinkOpened       EventType = "LinkOpened"
	EventLinkCopied       EventType = "LinkCopied"
	EventCodeExported     EventType = "CodeExported"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LinksLoadStartedEvent is emitted when the loader begins reading a source
type LinksLoadStartedEvent struct {
	Source LinkSource
}

func (e LinksLoadStartedEvent) Type() EventType { return EventLinksLoadStarted }

// LinksLoadedEvent carries the ordered deck once it has been read
type LinksLoadedEvent struct {
	Source  LinkSource
	Links   []Link
	Skipped int // entries dropped for missing url or title
}

func (e LinksLoadedEvent) Type() EventType { return EventLinksLoaded }

// LinksLoadFailedEvent is emitted when the source could not be read or parsed
type LinksLoadFailedEvent struct {
	Source LinkSource
	Err    error
}

func (e LinksLoadFailedEvent) Type() EventType { return EventLinksLoadFailed }

// LinkOpenedEvent is emitted after a link was handed to the system browser
type LinkOpenedEvent struct {
	URL string
}

func (e LinkOpenedEvent) Type() EventType { return EventLinkOpened }

// LinkCopiedEvent is emitted after a link was written to the clipboard
type LinkCopiedEvent struct {
	URL string
}

func (e LinkCopiedEvent) Type() EventType { return EventLinkCopied }

// CodeExportedEvent is emitted when a QR code was written to disk
type CodeExportedEvent struct {
	URL  string
	Path string
}

func (e CodeExportedEvent) Type() EventType { return EventCodeExported }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Links string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
