package generator

// Duplicate object policies.
const (
	DuplicateAllow  = "allow"
	DuplicateReject = "reject"
)

// Config bounds and tunes a single parse. Zero values for the limits disable them.
type Config struct {
	MaxFields        int      `help:"Maximum fields per object; further fields are dropped" default:"32" env:"METAGEN_MAX_FIELDS"`
	MaxObjects       int      `help:"Maximum objects registered for type references" default:"256" env:"METAGEN_MAX_OBJECTS"`
	MaxNameLength    int      `help:"Maximum length of object names, field names and field types" default:"63" env:"METAGEN_MAX_NAME_LENGTH"`
	MaxLineLength    int      `help:"Maximum input line length in bytes; longer lines are skipped" default:"65536" env:"METAGEN_MAX_LINE_LENGTH"`
	DuplicateObjects string   `help:"What to do with a repeated object name: emit both or skip the repeat" default:"allow" enum:"allow,reject" env:"METAGEN_DUPLICATE_OBJECTS"`
	ExtraTypes       []string `help:"Additional scalar type spellings accepted as field types" env:"METAGEN_EXTRA_TYPES"`
}

// DefaultConfig mirrors the flag defaults for callers that bypass the CLI.
func DefaultConfig() Config {
	return Config{
		MaxFields:        32,
		MaxObjects:       256,
		MaxNameLength:    63,
		MaxLineLength:    64 * 1024,
		DuplicateObjects: DuplicateAllow,
	}
}
