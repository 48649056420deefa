package constants

import "time"

// API endpoint.
const (
	// DefaultBaseURL is the Glo Boards API root every request path is joined to.
	DefaultBaseURL = "https://gloapi.gitkraken.com/v1/glo"

	// DefaultUserAgent is sent unless the configuration overrides it.
	DefaultUserAgent = "glo-go/1"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// NoHTTPTimeout leaves request deadlines to the caller's context.
	NoHTTPTimeout = 0 * time.Second

	// ShortHTTPTimeout is used by the CLI when verifying a token.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless the configuration asks for them.
const (
	// DefaultRetryMax is the default number of retries after the first attempt.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum backoff when retries are enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff when retries are enabled.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination and listing defaults.
const (
	// DefaultPage is the first page of any list endpoint.
	DefaultPage = 1

	// DefaultPerPage is the page size of every list endpoint.
	DefaultPerPage = 50

	// DefaultSort is the sort order of every list endpoint.
	DefaultSort = "asc"

	// DefaultArchived excludes archived items from list endpoints.
	DefaultArchived = false

	// DefaultSendNotifications is the batch-create notification flag.
	DefaultSendNotifications = false
)

// Query parameter names.
const (
	QueryPage     = "page"
	QueryPerPage  = "per_page"
	QueryArchived = "archived"
	QuerySort     = "sort"
	QueryFields   = "fields"
)

// Request headers.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-ID"

	// ContentTypeJSON is used for both request bodies and accepted responses.
	ContentTypeJSON = "application/json"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2

	// TokenPreviewLength is how many leading token characters the CLI shows.
	TokenPreviewLength = 4
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
