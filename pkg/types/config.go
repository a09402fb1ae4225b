package types

// Built-in defaults applied when a record leaves the field empty.
const (
	DefaultOrganization = "Team Ensemble"
	DefaultWebsite      = "https://team-ensemble.ch/"
)

// Defaults lists each optional contact field that is filled when absent,
// with the value to fill it with.
type Defaults struct {
	// Organization replaces an empty Contact.Organization.
	Organization string `json:"organization" yaml:"organization"`

	// Website replaces an empty Contact.Contact.Website.
	Website string `json:"website" yaml:"website"`
}

// BuiltinDefaults returns the defaults used when configuration sets none.
func BuiltinDefaults() Defaults {
	return Defaults{
		Organization: DefaultOrganization,
		Website:      DefaultWebsite,
	}
}

// BuildConfig holds settings for a site build.
type BuildConfig struct {
	// DataDir holds one YAML record per contact.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// TemplatePath is the HTML template applied to every contact.
	TemplatePath string `json:"template" yaml:"template"`

	// StaticDir is copied into the output root when it exists.
	StaticDir string `json:"static_dir" yaml:"static_dir"`

	// OutputDir is erased and regenerated on every build.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Defaults fills optional contact fields.
	Defaults Defaults `json:"defaults" yaml:"defaults"`
}

// CatalogConfig holds settings for the contact catalog.
type CatalogConfig struct {
	// DBPath is the SQLite database file (e.g. "contacts.db").
	DBPath string `json:"db" yaml:"db"`

	// MaxResults is the default lookup limit (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
