package config

// Config is the root configuration structure for actionfix.
// Serialised to ~/.actionfix/config.json.
type Config struct {
	GitHub   GitHubConfig   `mapstructure:"github"   json:"github"`
	Resolver ResolverConfig `mapstructure:"resolver" json:"resolver"`
}

// GitHubConfig identifies the repository to resolve and how to reach it.
type GitHubConfig struct {
	// Owner and Repo name the target repository. Both may be left empty and
	// supplied per invocation via flags or the local git remote.
	Owner string `mapstructure:"owner" json:"owner"`
	Repo  string `mapstructure:"repo"  json:"repo"`
	// Token is the personal access token. The GITHUB_TOKEN environment
	// variable takes precedence over the file value.
	Token string `mapstructure:"token" json:"token"`
	// Host allows enterprise GitHub (e.g. github.mycompany.com).
	Host string `mapstructure:"host"  json:"host"`
}

// ResolverConfig controls how a resolution cycle behaves.
type ResolverConfig struct {
	// MaxRuns caps how many recent failed runs are analyzed per cycle.
	MaxRuns int `mapstructure:"max_runs" json:"max_runs"`
	// Dir is the working tree whose workflow files get fixed.
	Dir string `mapstructure:"dir" json:"dir"`
	// Schedule is the cron expression used by the watch command.
	Schedule string `mapstructure:"schedule" json:"schedule"`
}
